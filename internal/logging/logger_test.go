package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run(
		"1. creates log file in directory",
		func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "logs")

			logger, errCr := NewLogger(dir, LevelDebug)
			require.NoError(t, errCr)

			logger.Info("hello", "weeks", 3)
			require.NoError(t, logger.Close())
			require.NoError(t, logger.Close())

			content, errRead := os.ReadFile(filepath.Join(dir, LogFileName))
			require.NoError(t, errRead)
			require.Contains(t, string(content), `"msg":"hello"`)
			require.Contains(t, string(content), `"weeks":3`)
		},
	)

	t.Run(
		"2. stderr when directory is empty",
		func(t *testing.T) {
			logger, errCr := NewLogger("", LevelInfo)
			require.NoError(t, errCr)
			require.Nil(t, logger.file)
			require.NoError(t, logger.Close())
		},
	)
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerTo(&buf, "warn")

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "WARN", entry["level"])
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerTo(&buf, "loud")
	logger.Debug("hidden")
	logger.Info("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerTo(&buf, LevelDebug).
		WithPhase("schedule").
		With("team_size", 4)

	logger.Debug("week allocated", "week", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "schedule", entry["phase"])
	require.EqualValues(t, 4, entry["team_size"])
	require.EqualValues(t, 1, entry["week"])
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.Error("discarded")

	require.NoError(t, logger.Close())
}
