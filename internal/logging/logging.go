// Package logging builds the editor's logger. The terminal belongs to the
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to path at level. An empty path discards
// output. The returned Closer releases the file.
func New(path, level string) (*log.Logger, io.Closer, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
	}

	if path == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(lvl)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		Prefix:          "modus",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, f, nil
}
