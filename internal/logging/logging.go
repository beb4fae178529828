// Package logging builds the structured logger shared by the CLI, the TUI
// and the game. File output is rotated by lumberjack.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	File     string    // Log file path; empty means Fallback
	Level    string    // debug, info, warn, error, fatal
	Prefix   string    // Printed before every message
	Fallback io.Writer // Used when File is empty; defaults to stderr
}

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and a closer for its sink.
// The closer must be called on shutdown to release the log file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
			}
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		w, closer = lj, lj
	case opts.Fallback != nil:
		w = opts.Fallback
	default:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// DefaultFile returns the log path used by the TUI when none is configured.
// Writing to the terminal would corrupt the alternate screen.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "tui-runner", "runner.log")
}
