package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/mockup-image-kit/pkg/imgutil"
)

// serveFrom は指定ディレクトリ直下のファイルだけを配信するハンドラを
// 返します。パストラバーサルはファイル名の時点で拒否します。
func (s *Server) serveFrom(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("filename")
		if !safeFileName(name) {
			http.Error(w, "invalid filename", http.StatusBadRequest)
			return
		}
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// handleSwatchThumb はスウォッチを JPEG に圧縮したプレビューを配信します。
// 一覧表示で原寸の PNG を引かせないための軽量ルートです。
func (s *Server) handleSwatchThumb(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	if !safeFileName(name) {
		http.Error(w, "invalid filename", http.StatusBadRequest)
		return
	}

	data, err := os.ReadFile(filepath.Join(s.swatchDir, name))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	jpg, err := imgutil.CompressToJPEG(data, 75)
	if err != nil {
		slog.Warn("スウォッチの圧縮に失敗しました", "file", name, "error", err)
		http.Error(w, "cannot process image", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := w.Write(jpg); err != nil {
		slog.Warn("サムネイルの書き込みに失敗しました", "file", name, "error", err)
	}
}

// safeFileName はパス区切りや親参照を含むファイル名を拒否します。
func safeFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
