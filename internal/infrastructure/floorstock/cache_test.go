package floorstock

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedSource_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkbook(t, dir, "fs.xlsx", [][]any{
		{"Part Number", "Location"},
		{"P-1", "R1"},
	})

	cache := NewCachedSource(NewExcelSource(&ExcelConfig{Path: path}), nil)
	ctx := context.Background()

	table, err := cache.Table(ctx)
	require.NoError(t, err)
	loc, _ := table.Lookup("P-1")
	assert.Equal(t, "R1", loc)

	// Replace the workbook but restore the old stamp: cached table is served
	info, err := os.Stat(path)
	require.NoError(t, err)
	writeWorkbook(t, dir, "fs.xlsx", [][]any{
		{"Part Number", "Location"},
		{"P-1", "R2"},
	})
	newInfo, err := os.Stat(path)
	require.NoError(t, err)

	if newInfo.Size() == info.Size() {
		require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))
		table, err = cache.Table(ctx)
		require.NoError(t, err)
		loc, _ = table.Lookup("P-1")
		assert.Equal(t, "R1", loc)
	}

	// Bump the modification time: reloaded
	later := info.ModTime().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	table, err = cache.Table(ctx)
	require.NoError(t, err)
	loc, _ = table.Lookup("P-1")
	assert.Equal(t, "R2", loc)
}

func TestCachedSource_MissingFile(t *testing.T) {
	cache := NewCachedSource(NewExcelSource(&ExcelConfig{Path: filepath.Join(t.TempDir(), "none.xlsx")}), nil)

	table, err := cache.Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(map[string]string{"P-1": "R1"})

	table, err := src.Table(context.Background())
	require.NoError(t, err)
	loc, ok := table.Lookup("P-1")
	assert.True(t, ok)
	assert.Equal(t, "R1", loc)
}

func TestLoadJSONSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"P-1":"R1","P-2":"R2"}`), 0o644))

	src, err := LoadJSONSource(path)
	require.NoError(t, err)
	table, err := src.Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	_, err = LoadJSONSource(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1,2]`), 0o644))
	_, err = LoadJSONSource(bad)
	assert.Error(t, err)
}
