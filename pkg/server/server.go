package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/mockup-image-kit/pkg/domain"
	"github.com/shouni/mockup-image-kit/pkg/mockup"
	"github.com/shouni/mockup-image-kit/pkg/utils"
)

// Searcher は生地データベースの検索を抽象化するインターフェースです。
type Searcher interface {
	Search(term string) ([]domain.FabricRecord, error)
}

// Server は生地検索 API と静的ファイル配信をまとめた HTTP サーバーです。
// 生成パイプラインそのものは持たず、生成済みの成果物を公開するだけです。
type Server struct {
	catalog     Searcher
	mockupDir   string
	techpackDir string
	swatchDir   string
	mux         *http.ServeMux
}

// New は依存関係を注入して Server を初期化します。
func New(catalog Searcher, mockupDir, techpackDir, swatchDir string) (*Server, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	s := &Server{
		catalog:     catalog,
		mockupDir:   mockupDir,
		techpackDir: techpackDir,
		swatchDir:   swatchDir,
		mux:         http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /api/find-fabrics", s.handleFindFabrics)
	s.mux.HandleFunc("GET /static/mockups/{filename}", s.serveFrom(s.mockupDir))
	s.mux.HandleFunc("GET /static/techpacks/{filename}", s.serveFrom(s.techpackDir))
	s.mux.HandleFunc("GET /static/swatches/{filename}", s.serveFrom(s.swatchDir))
	s.mux.HandleFunc("GET /thumbs/swatches/{filename}", s.handleSwatchThumb)
	return s, nil
}

// Handler は CORS とリクエストログを適用したルートハンドラを返します。
func (s *Server) Handler() http.Handler {
	return withCORS(withRequestLog(s.mux))
}

// handleFindFabrics は検索語から生地を引き、スウォッチ・スタイル情報・
// 生成済みモックアップを一度にまとめて返します（one-fetch）。
func (s *Server) handleFindFabrics(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	if term == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No 'search' parameter provided"})
		return
	}

	records, err := s.catalog.Search(term)
	if err != nil {
		slog.Error("データベース検索に失敗しました", "term", term, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error reading fabric database."})
		return
	}

	// 空ヒットでも null ではなく [] を返す
	hits := make([]domain.FabricHit, 0, len(records))
	for _, rec := range records {
		hits = append(hits, domain.FabricHit{
			Ref:              rec.Ref,
			Style:            rec.Style,
			SwatchURL:        s.swatchURL(rec.Ref),
			AvailableMockups: s.collectMockups(rec.Ref),
		})
	}
	writeJSON(w, http.StatusOK, hits)
}

// swatchURL はスウォッチ画像の配信 URL を返します。画像が無い場合は
// プレースホルダー画像の URL にフォールバックします。
func (s *Server) swatchURL(ref string) string {
	path, err := mockup.FindAsset(s.swatchDir, ref, mockup.CommonImageExts)
	if err != nil {
		slog.Warn("スウォッチ画像が見つかりません", "ref", ref)
		text := strings.ReplaceAll(ref, "-", "%0A")
		return fmt.Sprintf("https://placehold.co/400x400/eeeeee/cccccc?text=%s&font=inter", text)
	}
	return "/static/swatches/" + url.PathEscape(filepath.Base(path))
}

// collectMockups は出力ディレクトリを走査し、ref に紐づく生成済み
// モックアップをカテゴリ別に集めます。
func (s *Server) collectMockups(ref string) domain.MockupSet {
	return domain.MockupSet{
		Men:   s.mockupsForCategory("men", ref),
		Women: s.mockupsForCategory("women", ref),
		Kids:  s.mockupsForCategory("kids", ref),
	}
}

func (s *Server) mockupsForCategory(category, ref string) []domain.MockupEntry {
	pattern := filepath.Join(s.mockupDir, mockup.MockupFilePrefix+category+"*_"+ref+".png")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		slog.Warn("モックアップの走査に失敗しました", "pattern", pattern, "error", err)
		return []domain.MockupEntry{}
	}

	entries := make([]domain.MockupEntry, 0, len(paths))
	suffix := "_" + ref + ".png"
	for _, p := range paths {
		name := filepath.Base(p)
		if !strings.HasPrefix(name, mockup.MockupFilePrefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		garment := name[len(mockup.MockupFilePrefix) : len(name)-len(suffix)]

		var techpackURL *string
		techpackName := mockup.TechpackFileName(garment, ref)
		if fileExists(filepath.Join(s.techpackDir, techpackName)) {
			u := "/static/techpacks/" + url.PathEscape(techpackName)
			techpackURL = &u
		}

		entries = append(entries, domain.MockupEntry{
			GarmentName: utils.HumanizeGarmentName(garment),
			MockupURL:   "/static/mockups/" + url.PathEscape(name),
			TechpackURL: techpackURL,
		})
	}
	return entries
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("JSONレスポンスの書き込みに失敗しました", "error", err)
	}
}

// withCORS は全レスポンスに CORS ヘッダを付与します。
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestLog はアクセスログを slog で残します。
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
