// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-link-txt service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = zerolog.InfoLevel

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production *Logger for the given role label
// (e.g. "link-txt-server") writing JSON to os.Stdout.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "time" timestamp field;
//   - a "func" caller field with the fully-qualified function name.
//
// level is parsed with [ParseLevel].
func NewLogger(role, level string) *Logger {
	return NewLoggerWithWriter(role, level, os.Stdout)
}

// NewLoggerWithWriter is [NewLogger] with an explicit output.
func NewLoggerWithWriter(role, level string, w io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a textual level ("debug", "INFO", ...) into a zerolog
// level. Empty or unknown values yield [DefaultLevel].
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context and
// returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// WithContext and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger (disabled unless configured), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return fallback
	}
	return &Logger{*l}
}
