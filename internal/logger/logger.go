// Package logger builds the zerolog logger used by the command line tool.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// ParseLevel maps a level name to a zerolog level.
// An empty string selects info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level: %q", s)
	}
}

// New returns a colored console logger writing to stderr.
func New(level zerolog.Level) zerolog.Logger {
	return newConsole(colorable.NewColorableStderr(), false, level)
}

// NewWithWriter returns an uncolored console logger writing to w.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return newConsole(w, true, level)
}

func newConsole(w io.Writer, noColor bool, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
