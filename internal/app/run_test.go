package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bomres/internal/hclconf"
)

const sampleCSV = `Level,Material,Parent,Usage,Product
1,ROOT,,1,P100
2,45ABC,ROOT,2,P100
3,X1,45ABC,5,P100
`

const sampleConfig = `
resolver {
  pattern = "45"
}
`

// runApp wires a full App against temp files and returns the rows of the
// resolved CSV it produced.
func runApp(t *testing.T, cfg Config) [][]string {
	t.Helper()

	var out, errOut bytes.Buffer
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	a := NewApp(&out, &errOut, appConfig, hclconf.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	reader := out.Bytes()
	if cfg.OutputPath != "" {
		reader, err = os.ReadFile(cfg.OutputPath)
		require.NoError(t, err)
	}
	records, err := csv.NewReader(bytes.NewReader(reader)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bom.csv")
	confPath := filepath.Join(dir, "resolver.hcl")
	require.NoError(t, os.WriteFile(input, []byte(sampleCSV), 0o644))
	require.NoError(t, os.WriteFile(confPath, []byte(sampleConfig), 0o644))

	records := runApp(t, Config{
		InputPath:  input,
		ConfigPath: confPath,
		LogLevel:   "error",
	})

	require.Len(t, records, 4) // header + 3 rows
	// SysComponent and TotalUsage are the last two columns.
	assert.Equal(t, []string{"ROOT", "1"}, records[1][6:])
	assert.Equal(t, []string{"45ABC", "2"}, records[2][6:])
	assert.Equal(t, []string{"45ABC", "10"}, records[3][6:])
}

func TestRun_PatternFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bom.csv")
	confPath := filepath.Join(dir, "resolver.hcl")
	require.NoError(t, os.WriteFile(input, []byte(sampleCSV), 0o644))
	require.NoError(t, os.WriteFile(confPath, []byte(`
resolver {
  pattern = "ZZ"
}
`), 0o644))

	records := runApp(t, Config{
		InputPath:  input,
		ConfigPath: confPath,
		Pattern:    "45",
		LogLevel:   "error",
	})

	require.Len(t, records, 4)
	assert.Equal(t, []string{"45ABC", "10"}, records[3][6:])
}

func TestRun_OutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bom.csv")
	output := filepath.Join(dir, "resolved.csv")
	require.NoError(t, os.WriteFile(input, []byte(sampleCSV), 0o644))

	records := runApp(t, Config{
		InputPath:  input,
		Pattern:    "45",
		OutputPath: output,
		LogLevel:   "error",
	})

	require.Len(t, records, 4)
	assert.Equal(t, []string{"45ABC", "10"}, records[3][6:])
}

func TestRun_MissingInputFails(t *testing.T) {
	var out, errOut bytes.Buffer
	appConfig, err := NewConfig(Config{InputPath: filepath.Join(t.TempDir(), "absent.csv"), LogLevel: "error"})
	require.NoError(t, err)

	a := NewApp(&out, &errOut, appConfig, hclconf.NewLoader())
	assert.Error(t, a.Run(context.Background()))
}

func TestNewConfig_RequiresInput(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)
}
