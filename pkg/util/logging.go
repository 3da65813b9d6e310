package util

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-softwarelab/common/pkg/slogx"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slogx.NewBuilder().Silent().Logger())
}

// Logger returns the logger used by the collection packages. It discards
// everything unless SetLogger installed another one.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger. A nil logger restores the silent
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slogx.NewBuilder().Silent().Logger()
	}
	logger.Store(l)
}

// Debug logs at debug level only when the current logger has it enabled,
// so callers can pass attributes without paying for them otherwise.
func Debug(msg string, attrs func() []any) {
	l := Logger()
	if !slogx.IsDebug(l) {
		return
	}
	l.Debug(msg, attrs()...)
}
