package logx

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.Default())
}

// L returns the logger shared by all apiauth packages.
func L() *slog.Logger {
	return current.Load()
}

// SetLogger swaps the shared logger. Passing nil silences the library.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = Discard()
	}
	current.Store(l)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
