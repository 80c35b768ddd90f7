package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"paradoxpatch/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Writer receives log output. Defaults to os.Stderr so stdout stays
	// reserved for command results.
	Writer io.Writer
	// Color enables ANSI level labels in console output.
	Color       bool
	Development bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := ParseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	addSource := opts.Development || level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(w, levelVar, addSource)
	case "console":
		handler = newConsoleHandler(w, levelVar, addSource, opts.Color)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(handler), nil
}

// NewFromConfig creates a logger from the [logging] config section, shifted
// by the CLI verbosity: each -v lowers the threshold one step, each -q
// raises it.
func NewFromConfig(cfg *config.Config, verbosity int, w io.Writer, color bool) (*slog.Logger, error) {
	level, format := config.DefaultLogLevel, config.DefaultLogFormat
	if cfg != nil {
		level, format = cfg.Logging.Level, cfg.Logging.Format
	}
	return New(Options{
		Level:  AdjustLevel(level, verbosity),
		Format: format,
		Writer: w,
		Color:  color,
	})
}

// ParseLevel maps a level name onto slog. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

var levelLadder = []string{"error", "warn", "info", "debug"}

// AdjustLevel moves level by verbosity steps along error < warn < info <
// debug and clamps at both ends.
func AdjustLevel(level string, verbosity int) string {
	current := ParseLevel(level)
	idx := 2
	for i, name := range levelLadder {
		if ParseLevel(name) == current {
			idx = i
			break
		}
	}
	idx += verbosity
	idx = max(0, min(idx, len(levelLadder)-1))
	return levelLadder[idx]
}
