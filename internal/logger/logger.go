// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the client. Entries are JSON and carry
// the process role, a timestamp and the calling function under "func".
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// logFileName is created next to the executable.
const logFileName = "logs"

// Logger exposes the whole zerolog API through embedding.
type Logger struct {
	zerolog.Logger
}

// New writes every level to w.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewClientLogger logs to a file because the terminal belongs to the TUI.
// It falls back to stdout when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	return New(openLogFile(), role)
}

func openLogFile() io.Writer {
	exe, err := os.Executable()
	if err != nil {
		return os.Stdout
	}

	f, err := os.OpenFile(filepath.Join(filepath.Dir(exe), logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return os.Stdout
	}
	return f
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ForScreen returns a child tagged with screen. The receiver is unchanged.
func (l *Logger) ForScreen(screen string) *Logger {
	return &Logger{l.With().Str("screen", screen).Logger()}
}

// FromContext returns the logger a middleware stored in ctx, or a disabled
// one when there is none.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
