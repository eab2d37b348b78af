// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShiftOutOfRange is returned by ValidateShift.
var ErrShiftOutOfRange = errors.New("shift out of range")

// ErrUnknownDirection is returned by ParseDirection.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction selects whether a shift is applied forwards or backwards.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

// Sign returns +1 for Encrypt and -1 for Decrypt.
func (d Direction) Sign() int {
	if d == Decrypt {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "encrypt"/"decrypt" and the short forms "enc"/"dec",
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "e":
		return Encrypt, nil
	case "decrypt", "dec", "d":
		return Decrypt, nil
	}
	return Encrypt, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Shift rotates every member of the alphabet in text by amount positions.
// The text is upper-cased first. Characters outside the alphabet keep their
// value and position. amount may be negative or larger than the alphabet.
func (a Alphabet) Shift(text string, amount int) string {
	if text == "" || len(a.symbols) == 0 {
		return strings.ToUpper(text)
	}

	n := len(a.symbols)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		i := a.IndexOf(r)
		if i < 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(a.symbols[((i+amount)%n+n)%n])
	}
	return b.String()
}

// Apply shifts text by magnitude in the given direction.
func (a Alphabet) Apply(text string, magnitude int, dir Direction) string {
	return a.Shift(text, dir.Sign()*magnitude)
}

// Shifted returns the alphabet itself after applying magnitude in dir. It is
// the bottom row of the substitution table.
func (a Alphabet) Shifted(magnitude int, dir Direction) string {
	return a.Apply(a.String(), magnitude, dir)
}

// Shift rotates text over the Latin alphabet.
func Shift(text string, amount int) string {
	return Latin.Shift(text, amount)
}

// Apply shifts text over the Latin alphabet by magnitude in dir.
func Apply(text string, magnitude int, dir Direction) string {
	return Latin.Apply(text, magnitude, dir)
}

// ValidateShift checks that n lies in [lo, hi].
func ValidateShift(n, lo, hi int) error {
	if n < lo || n > hi {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrShiftOutOfRange, n, lo, hi)
	}
	return nil
}
