package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "ERROR", expected: slog.LevelError},
		{input: "", expected: slog.LevelWarn},
		{input: "bogus", expected: slog.LevelWarn},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLogLevel(tc.input))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(slog.LevelWarn, "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewLogger_UnknownLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(parseLogLevel("bogus"), "", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.Contains(t, buf.String(), "msg=shown")
	assert.NotContains(t, buf.String(), "hidden")
}
