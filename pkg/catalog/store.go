package catalog

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shouni/mockup-image-kit/pkg/domain"
)

const cacheKeyRecords = "catalog:records"

// Cacher はパース済みレコードをキャッシュするためのインターフェースです。
// nil を渡すとキャッシュなしで毎回スプレッドシートを読み直します。
type Cacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// Store は生地データベース（Excel）への読み取り専用アクセスを提供します。
// シートの先頭行をヘッダーとして扱い、必須カラムは
// {Fabric ref, Style, Fabrication}（大文字小文字は区別しない）です。
type Store struct {
	path  string
	cache Cacher
	ttl   time.Duration
}

// NewStore は Store を初期化します。cache は nil 許容です。
func NewStore(path string, cache Cacher, ttl time.Duration) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	return &Store{path: path, cache: cache, ttl: ttl}, nil
}

// Records はスプレッドシート全体をレコード列として返します。
func (s *Store) Records() ([]domain.FabricRecord, error) {
	if s.cache != nil {
		if val, ok := s.cache.Get(cacheKeyRecords); ok {
			if recs, ok := val.([]domain.FabricRecord); ok {
				return recs, nil
			}
		}
	}

	recs, err := s.readAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(cacheKeyRecords, recs, s.ttl)
	}
	return recs, nil
}

func (s *Store) readAll() ([]domain.FabricRecord, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("データベースを開けません %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("シートの読み取りに失敗しました: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("データベースが空です: %s", s.path)
	}

	// ヘッダー行を小文字化してカラム位置を引く。"fabric ref" は "ref" に
	// 読み替える（元データベースの表記ゆれ対応）。
	idx := map[string]int{}
	for i, name := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	refCol, okRef := idx["fabric ref"]
	styleCol, okStyle := idx["style"]
	fabCol, okFab := idx["fabrication"]
	if !okRef || !okStyle || !okFab {
		return nil, fmt.Errorf("データベースには Fabric ref, Style, Fabrication のカラムが必要です（検出: %v）", rows[0])
	}

	cell := func(row []string, col int) string {
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}

	var recs []domain.FabricRecord
	for _, row := range rows[1:] {
		ref := cell(row, refCol)
		if ref == "" {
			continue
		}
		recs = append(recs, domain.FabricRecord{
			Ref:         ref,
			Style:       cell(row, styleCol),
			Fabrication: cell(row, fabCol),
		})
	}

	slog.Info("生地データベースを読み込みました", "path", s.path, "records", len(recs))
	return recs, nil
}

// Search は検索語で生地を探します。まず Ref の完全一致（大文字小文字を
// 無視）を試し、ヒットしなければ Fabrication の部分一致に切り替えます。
// 戻り値は Ref の重複を除いた順序保存のリストで、同一 Ref が複数行ある
// 場合は最初の行のスタイル情報が採用されます。
func (s *Store) Search(term string) ([]domain.FabricRecord, error) {
	recs, err := s.Records()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil, nil
	}

	var matches []domain.FabricRecord
	for _, r := range recs {
		if strings.ToLower(r.Ref) == needle {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		slog.Info("Ref の完全一致なし。Fabrication を部分一致で検索します", "term", term)
		for _, r := range recs {
			if strings.Contains(strings.ToLower(r.Fabrication), needle) {
				matches = append(matches, r)
			}
		}
	}

	seen := map[string]bool{}
	var unique []domain.FabricRecord
	for _, r := range matches {
		if seen[r.Ref] {
			continue
		}
		seen[r.Ref] = true
		unique = append(unique, r)
	}
	return unique, nil
}
