// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(0, -3, 25); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Clamp(0, 30, 25); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := Clamp(0, 7, 25); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestAlignFooter(t *testing.T) {
	got := AlignFooter("left", "right", 20)
	if len(got) != 20 || !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Fatalf("unexpected footer %q", got)
	}
	// Too narrow: a single space separates the tokens.
	if got := AlignFooter("left", "right", 3); got != "left right" {
		t.Fatalf("unexpected narrow footer %q", got)
	}
}
