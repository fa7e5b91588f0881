// Package logger configures the process logger and reports extraction
// progress through it.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a flag value to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// New returns a logger writing to w. Console output goes through tint unless
// asJSON is set.
func New(w io.Writer, level string, asJSON bool) *slog.Logger {
	lvl := ParseLevel(level)
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}

// Observer logs the regions found while extracting a page.
type Observer struct {
	Logger *slog.Logger
}

func (o Observer) Lookup(field, value string, found bool) {
	if !found {
		o.Logger.Info("region not found, skipping", "field", field)
		return
	}
	o.Logger.Info("region found", "field", field, "value", strings.TrimSpace(value))
}

func (o Observer) Rows(count int) {
	if count == 0 {
		o.Logger.Info("no property rows found, skipping properties")
		return
	}
	o.Logger.Info("property rows found", "count", count)
}
