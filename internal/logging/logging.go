// Package logging configures the optional debug logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to path and a close function for its file.
// An empty path yields a logger that discards everything, so callers can
// log unconditionally. The log file never goes to the terminal; it would
// corrupt the alternate screen.
func New(path string) (*log.Logger, func(), error) {
	if path == "" {
		logger := log.NewWithOptions(io.Discard, log.Options{})
		return logger, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "keydrill",
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
	closeFn := func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close at shutdown.
			_ = cerr
		}
	}
	return logger, closeFn, nil
}
