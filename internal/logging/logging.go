// Package logging builds the zerolog logger used across gameui.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level string
	File  string
	JSON  bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger for cfg and the closer for its output file.
// Without a file the logger discards everything: the terminal belongs to the UI.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	var out io.Writer = f
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Str("app", "gameui").Logger()
	return logger, f, nil
}

// ParseLevel accepts zerolog level names plus a few aliases.
// An empty string means info.
func ParseLevel(raw string) (zerolog.Level, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none", "disable":
		return zerolog.Disabled, nil
	default:
		lvl, err := zerolog.ParseLevel(s)
		if err != nil {
			return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", raw, err)
		}
		return lvl, nil
	}
}
