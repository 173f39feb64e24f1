// Package logging provides *slog.Logger functionality to the print engine.
// The layout engine itself stays silent; only boundaries (configuration
// fallback, export writer, CLI) log through this package.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the package-level logger instance. Defaults to nil, which
// causes Logger() to return a discard logger.
var logger atomic.Pointer[slog.Logger]

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger configures the package-level logger. Pass nil to disable
// logging (slog.DiscardHandler is used).
//
// Safe for concurrent use.
//
// Example enabling debug output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		logger.Store(newDiscardLogger())
	} else {
		logger.Store(sl)
	}
}

// Logger returns the package-level logger, or a discard logger when none
// has been configured.
//
// Safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.Store(l)
	}
	return l
}
