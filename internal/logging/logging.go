// Package logging builds the zerolog loggers used by the calculator's
// front-ends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLevel parses a level name. The empty string is info, and "none" is an
// alias for disabled.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "":
		return zerolog.InfoLevel, nil
	case "none", "off":
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// New creates a logger at the given level. If path is not empty, logs are
// appended to that file as JSON lines. Otherwise, they are written to w in
// human-readable form, or discarded if w is nil. The returned Closer closes
// the log file, if any.
func New(level, path string, w io.Writer) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
		}
		l := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
		return l, f, nil
	}
	if w == nil || lvl == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	l := zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
	return l, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
