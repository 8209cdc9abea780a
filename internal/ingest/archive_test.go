package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeZip creates a ZIP archive at a temp path with the given entries.
func writeZip(t *testing.T, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestParseZip_CSVEntry(t *testing.T) {
	path := writeZip(t, map[string][]byte{
		"readme.txt": []byte("ignore me"),
		"bom.csv":    []byte(sampleCSV),
	})

	table, err := ParseZip(context.Background(), path, "")
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, "45ABC", table[1].Material)
}

func TestParseZip_NoSpreadsheetEntry(t *testing.T) {
	path := writeZip(t, map[string][]byte{
		"readme.txt": []byte("nothing tabular here"),
	})

	_, err := ParseZip(context.Background(), path, "")
	assert.ErrorContains(t, err, "no spreadsheet entry")
}

func TestParseZip_MissingArchive(t *testing.T) {
	_, err := ParseZip(context.Background(), filepath.Join(t.TempDir(), "absent.zip"), "")
	assert.Error(t, err)
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	table, err := ReadFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Len(t, table, 3)
}

func TestReadFile_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bom.csv"), []byte(sampleCSV), 0o644))

	table, err := ReadFile(context.Background(), dir, "")
	require.NoError(t, err)
	assert.Len(t, table, 3)
}

func TestReadFile_MissingInput(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), "")
	assert.Error(t, err)
}
