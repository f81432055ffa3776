// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds the
// constructors and helpers used by the bus pass interaction layer.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Components receive a *Logger at construction time and derive a child
// logger tagged with their component name via ForComponent.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogFileName is the log file created next to the executable when no
// explicit path is configured.
const defaultLogFileName = "logs"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func setupGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	setupGlobals()
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for interactive processes that own the
// terminal. Entries are appended to path; when path is empty a "logs" file
// next to the executable is used. If the file cannot be opened the logger
// falls back to os.Stdout.
func NewClientLogger(role, path string) *Logger {
	setupGlobals()

	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), defaultLogFileName)
	}

	var out io.Writer = os.Stdout
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForComponent returns a child logger with a "component" field, e.g.
// "notify" or "sorting".
func (l *Logger) ForComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithContext attaches the logger to ctx so it can be recovered with
// FromContext inside tea commands and workers.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. If no logger has been attached, zerolog's default logger is
// returned, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
