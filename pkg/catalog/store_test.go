package catalog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeDatabase はテスト用の xlsx を組み立てます。
func writeDatabase(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "fabric_database.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func defaultDatabase(t *testing.T) string {
	return writeDatabase(t, [][]interface{}{
		{"Fabric Ref", "Style", "Fabrication"},
		{"FAB-101", "Jersey", "100% Cotton Single Jersey"},
		{"FAB-102", "Pique", "95% Cotton 5% Elastane Pique"},
		{"FAB-101", "Jersey Alt", "100% Cotton Single Jersey"}, // 重複 Ref
		{"FAB-201", "Fleece", "80% Cotton 20% Polyester Fleece"},
	})
}

type mockCache struct {
	data map[string]any
	sets int
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.sets++
	m.data[key] = value
}

func TestStore_Search(t *testing.T) {
	t.Run("Success/ExactRefMatchWinsOverFabrication", func(t *testing.T) {
		store, err := NewStore(defaultDatabase(t), nil, 0)
		require.NoError(t, err)

		hits, err := store.Search("fab-101")
		require.NoError(t, err)
		require.Len(t, hits, 1, "duplicate refs must be collapsed")
		assert.Equal(t, "FAB-101", hits[0].Ref)
		// 同一 Ref が複数行ある場合は最初の行が勝つ
		assert.Equal(t, "Jersey", hits[0].Style)
	})

	t.Run("Success/FallsBackToFabricationContains", func(t *testing.T) {
		store, err := NewStore(defaultDatabase(t), nil, 0)
		require.NoError(t, err)

		hits, err := store.Search("cotton")
		require.NoError(t, err)
		refs := make([]string, 0, len(hits))
		for _, h := range hits {
			refs = append(refs, h.Ref)
		}
		assert.Equal(t, []string{"FAB-101", "FAB-102", "FAB-201"}, refs)
	})

	t.Run("Success/NoMatchesReturnsEmpty", func(t *testing.T) {
		store, err := NewStore(defaultDatabase(t), nil, 0)
		require.NoError(t, err)

		hits, err := store.Search("silk")
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("Failure/MissingRequiredColumns", func(t *testing.T) {
		path := writeDatabase(t, [][]interface{}{
			{"Ref", "Name"},
			{"FAB-1", "x"},
		})
		store, err := NewStore(path, nil, 0)
		require.NoError(t, err)

		_, err = store.Search("FAB-1")
		assert.Error(t, err)
	})

	t.Run("Failure/MissingFile", func(t *testing.T) {
		store, err := NewStore(filepath.Join(t.TempDir(), "missing.xlsx"), nil, 0)
		require.NoError(t, err)

		_, err = store.Search("anything")
		assert.Error(t, err)
	})
}

func TestStore_Cache(t *testing.T) {
	t.Run("キャッシュがあれば2回目以降は読み直さないこと", func(t *testing.T) {
		cache := &mockCache{data: make(map[string]any)}
		store, err := NewStore(defaultDatabase(t), cache, time.Minute)
		require.NoError(t, err)

		_, err = store.Records()
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)

		_, err = store.Records()
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets, "second read must hit the cache")
	})
}

func TestNewStore_Validation(t *testing.T) {
	_, err := NewStore("", nil, 0)
	assert.Error(t, err)
}
