// Command mockupgen は対話プロンプトからモックアップを1枚生成して保存します。
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shouni/mockup-image-kit/pkg/config"
	"github.com/shouni/mockup-image-kit/pkg/domain"
	"github.com/shouni/mockup-image-kit/pkg/mockup"
)

func main() {
	configPath := flag.String("config", "config.yaml", "設定ファイルのパス")
	tile := flag.Bool("tile", false, "fit-center ではなく scale-and-tile で配置する")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	gen, err := mockup.NewGenerator(mockup.Dirs{
		FabricDir:  cfg.Paths.FabricDir,
		GarmentDir: cfg.Paths.MockupDir,
		MaskDir:    cfg.Paths.MaskDir,
		OutputDir:  cfg.Paths.MockupOutputDir,
	}, nil, nil)
	if err != nil {
		slog.Error("ジェネレーターの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	fmt.Println("--- SRX Mockup Generator ---")
	in := bufio.NewReader(os.Stdin)

	fabricRef := promptLine(in, "Enter Fabric Ref Code (e.g., FAB-101): ")
	garmentName := promptLine(in, "Enter Garments Type (e.g., mens_tshirt): ")
	if fabricRef == "" || garmentName == "" {
		fmt.Fprintln(os.Stderr, "Error: Both fields are required.")
		os.Exit(1)
	}
	scale := promptScale(in)

	mode := domain.ModeFitCenter
	if *tile {
		mode = domain.ModeScaleTile
	}

	res, err := gen.CreateMockup(context.Background(), domain.MockupRequest{
		FabricRef:   fabricRef,
		GarmentName: garmentName,
		Scale:       scale,
		Mode:        mode,
	})
	if err != nil {
		slog.Error("モックアップ生成に失敗しました", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\nSuccessfully generated mockup:\n%s\n", res.Path)
}

func promptLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptScale はユーザー入力のスケールを読み取ります。空欄・数値でない・
// 0 以下はいずれも 1.0 に正規化します（コアへ渡す前の境界側の防衛）。
func promptScale(in *bufio.Reader) float64 {
	raw := promptLine(in, "Enter fabric scale (e.g., 0.5 for half, 1.0 for normal): ")
	if raw == "" {
		return 1.0
	}
	scale, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Println("Error: Invalid scale. Defaulting to 1.0.")
		return 1.0
	}
	if scale <= 0 {
		fmt.Println("Warning: Scale must be > 0. Defaulting to 1.0.")
		return 1.0
	}
	return scale
}
