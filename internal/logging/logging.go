// Package logging builds the editor's structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robby/cuelist/internal/config"
)

// Prefix tags every log line written by the editor.
const Prefix = "cuelist"

var formatters = map[string]log.Formatter{
	config.FormatText:   log.TextFormatter,
	config.FormatLogfmt: log.LogfmtFormatter,
	config.FormatJSON:   log.JSONFormatter,
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured by cfg and a Closer for its output.
// With no file configured, output is discarded.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	formatter, ok := formatters[cfg.Format]
	if !ok {
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	return NewWithWriter(w, level, formatter), closer, nil
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, level log.Level, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})
}

// Discard returns a logger that drops everything. Tests and callers without
// a configured logger use it.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, log.FatalLevel, log.TextFormatter)
}
