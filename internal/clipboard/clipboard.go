// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard wraps the system clipboard behind a small interface so
// the UI can copy output without caring whether a clipboard exists.
package clipboard

import (
	"errors"

	sysclip "github.com/atotto/clipboard"

	"github.com/toeirei/caesar/internal/logging"
)

// ErrDisabled is returned by Disabled.
var ErrDisabled = errors.New("clipboard disabled")

// Writer receives copied text.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the host clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if sysclip.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return sysclip.WriteAll(text)
}

// Disabled rejects every write.
type Disabled struct{}

func (Disabled) WriteAll(string) error { return ErrDisabled }

// New returns System when enabled, Disabled otherwise.
func New(enabled bool) Writer {
	if enabled {
		return System{}
	}
	return Disabled{}
}

// Copy writes text to w and reports success. Failures are only logged.
func Copy(w Writer, text string) bool {
	if w == nil {
		return false
	}
	if err := w.WriteAll(text); err != nil {
		logging.Debugf("clipboard write failed: %v", err)
		return false
	}
	return true
}
