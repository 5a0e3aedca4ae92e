// Package logger configures the operational slog logger used by the
// long-running servers (MCP and HTTP). Audit entries go to internal/log;
// this is for diagnostics only.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
)

// Options selects where and how much to log.
type Options struct {
	// File, when set, receives logs through a rotating writer instead of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      string
	JSON       bool
}

// New returns a logger and a close function that flushes any file writer.
// MCP speaks JSON-RPC over stdout, so the default destination is stderr.
func New(opts Options) (*slog.Logger, func()) {
	var (
		w       io.Writer = os.Stderr
		rotator *lumberjack.Logger
	)
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		w = rotator
	}

	l := slog.New(handler(w, opts))
	return l, func() {
		if rotator != nil {
			rotator.Close()
		}
	}
}

func handler(w io.Writer, opts Options) slog.Handler {
	ho := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	if opts.JSON || opts.File != "" {
		return slog.NewJSONHandler(w, ho)
	}
	return slog.NewTextHandler(w, ho)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
