// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyAlphabet   = errors.New("alphabet has no symbols")
	ErrDuplicateSymbol = errors.New("alphabet contains a duplicate symbol")
)

// LatinLetters are the 26 uppercase Latin letters in order.
const LatinLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Latin is the alphabet used everywhere unless configured otherwise.
var Latin = MustAlphabet(LatinLetters)

// Alphabet is an immutable ordered set of symbols. Its length is the shift
// modulus.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from the given symbols, in order. Symbols
// are upper-cased so that they match upper-cased input text.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(strings.ToUpper(symbols))
	if len(runes) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; ok {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}

	return Alphabet{symbols: runes, index: index}, nil
}

// MustAlphabet is like NewAlphabet but panics on invalid input.
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// IndexOf returns the position of r, or -1 when r is not a member.
func (a Alphabet) IndexOf(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// Symbols returns a copy of the ordered symbols.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the symbols as a single string.
func (a Alphabet) String() string {
	return string(a.symbols)
}

// ContainsAll reports whether every rune of s, after upper-casing, is a
// member of the alphabet. The empty string is not accepted.
func (a Alphabet) ContainsAll(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range strings.ToUpper(s) {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}
