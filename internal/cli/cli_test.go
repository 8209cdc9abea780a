package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_InputFlag(t *testing.T) {
	var buf bytes.Buffer
	cfg, exit, err := Parse([]string{"--input", "bom.csv", "--pattern", "45|46"}, &buf)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "bom.csv", cfg.InputPath)
	assert.Equal(t, "45|46", cfg.Pattern)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_PositionalInput(t *testing.T) {
	var buf bytes.Buffer
	cfg, exit, err := Parse([]string{"export.xlsx"}, &buf)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "export.xlsx", cfg.InputPath)
}

func TestParse_ShorthandFlag(t *testing.T) {
	var buf bytes.Buffer
	cfg, _, err := Parse([]string{"-i", "bom.zip"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "bom.zip", cfg.InputPath)
}

func TestParse_NoInputPrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	cfg, exit, err := Parse(nil, &buf)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, buf.String(), "Usage:")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := Parse([]string{"--input", "x.csv", "--log-level", "loud"}, &buf)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := Parse([]string{"--input", "x.csv", "--log-format", "xml"}, &buf)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_UnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := Parse([]string{"--bogus"}, &buf)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
