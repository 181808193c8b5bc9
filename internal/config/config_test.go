package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[output]
path = "out/plan.xlsx"

[style]
header_fill = "FF0000"
data_row_height = 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "out/plan.xlsx", cfg.Output.Path)
	assert.Equal(t, "時程規劃", cfg.Output.SheetTitle)
	assert.Equal(t, "FF0000", cfg.Style.HeaderFill)
	assert.Equal(t, 30.0, cfg.Style.DataRowHeight)
	assert.Equal(t, 25.0, cfg.Style.HeaderRowHeight)
	assert.Equal(t, "yyyy-mm-dd", cfg.Style.DateFormat)
	assert.Equal(t, 10, cfg.UI.RowsPerPage)
	assert.Equal(t, 0.8, cfg.AI.MinConfidence)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output\npath = "), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
