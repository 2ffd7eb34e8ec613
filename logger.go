package chartsdk

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for non fatal formatting diagnostics.
// Passing nil restores slog.Default().
func SetLogger(logger *slog.Logger) {
	pkgLogger.Store(logger)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
