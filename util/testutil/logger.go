package testutil

import (
	"goyave.dev/mailaddr/slog"
)

// LogWriter implementation of `io.Writer` redirecting the logs to `testing.T.Log()`
type LogWriter struct {
	t interface {
		Log(args ...any)
	}
}

// NewLogWriter creates a new `LogWriter` redirecting to the given test.
func NewLogWriter(t interface{ Log(args ...any) }) *LogWriter {
	return &LogWriter{t: t}
}

func (w LogWriter) Write(b []byte) (int, error) {
	w.t.Log(string(b))
	return len(b), nil
}

// NewTestLogger create a new logger in dev mode (debug level)
// redirecting its output to `testing.T.Log()`.
func NewTestLogger(t interface{ Log(args ...any) }) *slog.Logger {
	return slog.New(slog.NewHandler(true, NewLogWriter(t)))
}
