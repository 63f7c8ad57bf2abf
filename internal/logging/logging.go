// Package logging builds the application logger. The terminal belongs to the
// UI, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Options configure New.
type Options struct {
	// Path is the log file; empty discards output.
	Path  string
	Level string
}

// New returns a logger and a close function for its destination.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	return NewWithWriter(w, level), closeFn, nil
}

// NewWithWriter returns a text logger writing to w.
func NewWithWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "jasktodo",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, log.FatalLevel)
}
