// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr so command output on
// stdout stays clean for piping.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Level: clog.WarnLevel})

// SetLevel parses level ("debug", "info", "warn", "error") and applies it.
func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetDebug switches between debug and warn level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.WarnLevel)
}

var output io.Writer = os.Stderr

// SetOutput redirects the logger, e.g. away from the terminal while the TUI
// owns the screen.
func SetOutput(w io.Writer) {
	output = w
	L.SetOutput(w)
}

// Output returns the writer last passed to SetOutput, stderr by default.
func Output() io.Writer {
	return output
}

// ToFile appends log output to path, creating its directory, until restore
// is called. If the file cannot be opened, output is discarded instead and
// the error is returned; restore is valid in both cases.
func ToFile(path string) (restore func(), err error) {
	prev := output
	restore = func() { SetOutput(prev) }

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		SetOutput(io.Discard)
		return restore, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		SetOutput(io.Discard)
		return restore, fmt.Errorf("open log file: %w", err)
	}

	SetOutput(f)
	return func() {
		SetOutput(prev)
		_ = f.Close()
	}, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
