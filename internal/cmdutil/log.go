// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log levels and formats accepted on the command line.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatText = "text"
	FormatJSON = "json"
)

// LogOptions selects the logger built by NewLogger.
type LogOptions struct {
	Level  string // debug|info|warn|error; empty means debug
	Format string // text|json; empty means text
	Quiet  bool   // forces error level
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid --log-level %q (want debug|info|warn|error)", s)
}

// NewLogger builds the process logger writing to dst. Nothing is installed
// globally; callers pass the logger down explicitly.
func NewLogger(dst io.Writer, o LogOptions) (*slog.Logger, error) {
	lvl, err := ParseLevel(o.Level)
	if err != nil {
		return nil, err
	}
	if o.Quiet {
		lvl = slog.LevelError
	}
	ho := &slog.HandlerOptions{Level: lvl}
	switch o.Format {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(dst, ho)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(dst, ho)), nil
	}
	return nil, fmt.Errorf("invalid --log-format %q (want text|json)", o.Format)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
