package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Server   ServerConfig   `yaml:"server"`
	Techpack TechpackCoords `yaml:"techpack_coords"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PathsConfig はアセットと出力の各ディレクトリです。
type PathsConfig struct {
	FabricDir           string `yaml:"fabric_dir"`
	MockupDir           string `yaml:"mockup_dir"`
	MaskDir             string `yaml:"mask_dir"`
	MockupOutputDir     string `yaml:"mockup_output_dir"`
	FabricSwatchDir     string `yaml:"fabric_swatch_dir"`
	ExcelDir            string `yaml:"excel_dir"`
	FabricDatabaseFile  string `yaml:"fabric_database_file"`
	TechpackTemplateDir string `yaml:"techpack_template_dir"`
	PDFOutputDir        string `yaml:"pdf_output_dir"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// TechpackCoords はテックパックテンプレート上のモックアップ配置領域を
// ピクセル座標で指定します（テンプレート左上原点）。
type TechpackCoords struct {
	TotalTemplateWidthPx  int `yaml:"total_template_width_px"`
	TotalTemplateHeightPx int `yaml:"total_template_height_px"`
	SelectionXPx          int `yaml:"selection_x_px"`
	SelectionYPx          int `yaml:"selection_y_px"`
	SelectionWidthPx      int `yaml:"selection_width_px"`
	SelectionHeightPx     int `yaml:"selection_height_px"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load は YAML 設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルを読み込めません %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの形式が不正です %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if c.Paths.MockupOutputDir == "" {
		c.Paths.MockupOutputDir = "generated_mockups"
	}
	if c.Paths.PDFOutputDir == "" {
		c.Paths.PDFOutputDir = "generated_techpacks"
	}
	if c.Paths.ExcelDir == "" {
		c.Paths.ExcelDir = "excel_files"
	}
	if c.Paths.FabricDatabaseFile == "" {
		c.Paths.FabricDatabaseFile = "fabric_database.xlsx"
	}
	if c.Paths.FabricSwatchDir == "" {
		c.Paths.FabricSwatchDir = "fabric_swatches"
	}
}
