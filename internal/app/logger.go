package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/dictionary-connector/internal/config"
	"github.com/heartmarshall/dictionary-connector/pkg/ctxutil"
)

// NewLogger creates the process logger on os.Stderr and installs it as the
// slog default.
//
// Format "json" emits one JSON object per line. Any other format emits text
// with source locations, meant for local runs.
// Records logged with a request context carry its request_id. Level is debug, info, warn or
// error, case-insensitive; anything else means info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}

	var h slog.Handler
	if isJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(ctxutil.NewLogHandler(h))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
