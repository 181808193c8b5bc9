package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutputWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, slog.LevelInfo)
	defer SetOutput(&bytes.Buffer{}, slog.LevelInfo)

	Info("workbook saved", "rows", 13)
	Debug("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "msg=\"workbook saved\"")
	assert.Contains(t, out, "rows=13")
	assert.NotContains(t, out, "hidden")
}

func TestSetupCreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := Setup(dir, slog.LevelDebug)
	require.NoError(t, err)

	Warn("status not recognised", "status", "暫停")
	require.NoError(t, closer.Close())
	SetOutput(&bytes.Buffer{}, slog.LevelInfo)

	data, err := os.ReadFile(filepath.Join(dir, "schedsheet.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=WARN")
	assert.Contains(t, string(data), "status=暫停")
}
