package config

import (
	"io"
	"log/slog"
	"os"
)

// LogMode selects the logger output.
type LogMode string

const (
	// ModeDev writes human-readable text to stderr at debug level.
	ModeDev LogMode = "dev"
	// ModeProd writes JSON to stdout at info level.
	ModeProd LogMode = "prod"
	// ModeSilence discards everything.
	ModeSilence LogMode = "silence"
)

// NewLogger builds the logger for a mode. Unknown modes fall back to ModeDev.
func NewLogger(mode LogMode) *slog.Logger {
	return NewLoggerTo(mode, os.Stderr, os.Stdout)
}

// NewLoggerTo is NewLogger with explicit destinations for the dev and prod modes.
func NewLoggerTo(mode LogMode, dev, prod io.Writer) *slog.Logger {
	switch mode {
	case ModeProd:
		return slog.New(slog.NewJSONHandler(prod, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case ModeSilence:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	default:
		return slog.New(slog.NewTextHandler(dev, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
