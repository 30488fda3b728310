// Package logging builds the slog logger used for progress and diagnostics.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Rotation defaults for file output.
const (
	DefaultMaxSize    = 10 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 30 // days
)

// Config selects level, format and destination.
type Config struct {
	Level  string
	Format string
	// File enables rotating file output in addition to stderr when set.
	File string
}

// New returns a logger and a closer for the file sink, if any.
func New(cfg Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	w := stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    DefaultMaxSize,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAge,
			Compress:   true,
		}
		w = io.MultiWriter(stderr, lj)
		closer = lj
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closer, nil
}

// ParseLevel converts a level name to slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
