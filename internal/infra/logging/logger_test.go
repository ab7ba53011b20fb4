package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), tt.input)
	}
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)
	got := formatLog(ts, slog.LevelWarn, "store", "starting with an empty task list")
	assert.Equal(t, "[2025-12-30 09:32:51] [WARN] [store] starting with an empty task list\n", got)
}

func TestLogger_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l := New(dir, slog.LevelInfo)
	l.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	l.Debug("task", "hidden")
	l.Info("task", "created: \"A\"")
	l.Error("store", "boom")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(filepath.Join(dir, "todo.log"))
	require.NoError(t, err)
	assert.Equal(t,
		"[2025-01-01 00:00:00] [INFO] [task] created: \"A\"\n"+
			"[2025-01-01 00:00:00] [ERROR] [store] boom\n",
		string(content))
}

func TestLogger_Disabled(t *testing.T) {
	l := New("", slog.LevelDebug)
	l.Info("task", "ignored")

	assert.Equal(t, "", l.Path())
	assert.NoError(t, l.Close())
}

func TestLogger_CloseTwice(t *testing.T) {
	l := New(t.TempDir(), slog.LevelInfo)
	l.Info("task", "x")

	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}
