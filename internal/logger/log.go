// SPDX-FileCopyrightText: Petr Nakoukal <petr@nakoukal.net>
//
// SPDX-License-Identifier: MIT

// Package logger provides the structured logger used across the dashboard.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is a type wrapper around the stdlib slog.Logger.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing to STDERR with the given minimum level.
func New(level slog.Level) *Logger {
	return NewLogger(level, os.Stderr)
}

// NewLogger returns a Logger writing to output with the given minimum level.
func NewLogger(level slog.Level, output io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))}
}

// Err wraps an error into a slog.Attr for uniform error logging.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
