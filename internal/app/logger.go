package app

import (
	"io"
	"log/slog"
)

// defaultLogLevel keeps a plain run quiet: stdout carries only answers.
const defaultLogLevel = slog.LevelWarn

// parseLogLevel maps a --log-level value to a slog.Level. Unknown or empty
// values fall back to defaultLogLevel.
func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if s == "" || level.UnmarshalText([]byte(s)) != nil {
		return defaultLogLevel
	}
	return level
}

// newLogger builds the run logger writing to logW. The global logger is left
// alone so every App owns an isolated instance.
func newLogger(level slog.Level, format string, logW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}
