// Package logging builds the structured loggers used across retrodesk.
//
// The terminal front end owns stdout, so the local session logs to a file
// under the XDG state directory, and only when debugging is on.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Prefix string
	Debug  bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
	if opts.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Path returns the debug log location.
func Path() (string, error) {
	path, err := xdg.StateFile(filepath.Join("retrodesk", "retrodesk.log"))
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return path, nil
}

// OpenFile returns a debug logger appending to the state log file, and a
// closer for it. Without debug it returns a discarding logger.
func OpenFile(prefix string, debug bool) (*log.Logger, io.Closer, error) {
	if !debug {
		return Discard(), io.NopCloser(nil), nil
	}
	path, err := Path()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, Options{Prefix: prefix, Debug: true}), f, nil
}
