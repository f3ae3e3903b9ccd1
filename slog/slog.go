// Package slog extends the standard structured logger so errors created
// with `util/errors` are logged with their stack trace and each of their
// reasons.
package slog

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"goyave.dev/mailaddr/util/errors"
)

type unwrapper interface {
	Unwrap() []error
}

// Logger an extension of standard `*slog.Logger` overriding the `Error()` and `ErrorCtx()`
// functions so they take an error as parameter and handle `*errors.Error` gracefully.
type Logger struct {
	*slog.Logger
}

// New creates a new Logger with the given non-nil Handler.
func New(h slog.Handler) *Logger {
	return &Logger{slog.New(h)}
}

// Discard returns a Logger dropping every record.
func Discard() *Logger {
	return New(slog.DiscardHandler)
}

// With returns a new Logger that includes the given arguments, converted to
// Attrs as in [slog.Logger.Log].
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Error logs the given error at the error level. If the error is an `*errors.Error`,
// one record is written for each reason, with the stack trace in the "trace" attribute.
func (l *Logger) Error(err error, args ...any) {
	l.logError(context.Background(), err, args...)
}

// ErrorCtx logs the given error at the error level with the given context. See `Error`.
func (l *Logger) ErrorCtx(ctx context.Context, err error, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.logError(ctx, err, args...)
}

func (l *Logger) logError(ctx context.Context, err error, args ...any) {
	if !l.Enabled(ctx, slog.LevelError) {
		return
	}
	r := l.makeRecord(slog.LevelError, err.Error(), args...)

	switch e := err.(type) {
	case *errors.Error:
		l.handleError(ctx, e, r)
	case unwrapper:
		for _, e := range e.Unwrap() {
			l.handleReason(ctx, e, r)
		}
	default:
		_ = l.Handler().Handle(ctx, r)
	}
}

func (l *Logger) makeRecord(level slog.Level, msg string, args ...any) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(4, pcs[:]) // Skip runtime.Callers, makeRecord, logError, Error
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	return r
}

func (l *Logger) handleError(ctx context.Context, err *errors.Error, record slog.Record) {
	trace := slog.String("trace", err.StackFrames().String())
	record.AddAttrs(trace)
	if err.Len() == 0 {
		_ = l.Handler().Handle(ctx, record)
		return
	}

	for _, r := range err.Unwrap() {
		l.handleReason(ctx, r, record)
	}
}

func (l *Logger) handleReason(ctx context.Context, reason error, record slog.Record) {
	clone := record.Clone()
	clone.Message = reason.Error()
	switch e := reason.(type) {
	case *errors.Error:
		l.handleError(ctx, e, clone)
	case errors.Reason:
		if _, isDevMode := l.Handler().(*DevModeHandler); !isDevMode {
			clone.AddAttrs(slog.Any("reason", e.Value()))
		}
		_ = l.Handler().Handle(ctx, clone)
	default:
		_ = l.Handler().Handle(ctx, clone)
	}
}
