package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/jdict-engine/internal/config"
)

// NewLogger creates a *slog.Logger from LogConfig and installs it as the
// process default via slog.SetDefault.
//
// Format "json" produces structured JSON output for production; anything
// else falls back to human-readable text with source locations. Level
// accepts debug, info, warn, error (case-insensitive) and defaults to info.
// Output always goes to os.Stderr so result printing on stdout stays clean.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	opts.AddSource = true
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
