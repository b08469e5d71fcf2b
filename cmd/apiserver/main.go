// Command apiserver は生地検索 API と生成済み成果物の配信サーバーを起動します。
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/shouni/mockup-image-kit/pkg/catalog"
	"github.com/shouni/mockup-image-kit/pkg/config"
	"github.com/shouni/mockup-image-kit/pkg/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "設定ファイルのパス")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	dbPath := filepath.Join(cfg.Paths.ExcelDir, cfg.Paths.FabricDatabaseFile)
	store, err := catalog.NewStore(dbPath, nil, 0)
	if err != nil {
		slog.Error("カタログの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	srv, err := server.New(store,
		cfg.Paths.MockupOutputDir,
		cfg.Paths.PDFOutputDir,
		cfg.Paths.FabricSwatchDir)
	if err != nil {
		slog.Error("サーバーの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	addr := ":" + cfg.Server.Port
	slog.Info("--- Mockup API Server ---",
		"addr", addr,
		"database", dbPath,
		"mockups", cfg.Paths.MockupOutputDir,
		"swatches", cfg.Paths.FabricSwatchDir)

	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		slog.Error("サーバーが停止しました", "error", err)
		os.Exit(1)
	}
}
