// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/util/slicest"
)

var (
	ErrNoWords           = errors.New("word list is empty")
	ErrInvalidWord       = errors.New("word contains symbols outside the alphabet")
	ErrInvalidShiftRange = errors.New("invalid shift range")
)

// DefaultWords is the built-in practice vocabulary.
var DefaultWords = []string{"HELLO", "WORLD", "CIPHER", "SECRET", "CODE"}

const (
	DefaultMinShift = 1
	DefaultMaxShift = 25
)

// Generator produces random questions. It is not safe for concurrent use
// because it owns a *rand.Rand.
type Generator struct {
	words    []string
	minShift int
	maxShift int
	alphabet cipher.Alphabet
	rng      *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithWords replaces the word list.
func WithWords(words ...string) Option {
	return func(g *Generator) {
		g.words = append([]string(nil), words...)
	}
}

// WithShiftRange sets the inclusive shift bounds.
func WithShiftRange(lo, hi int) Option {
	return func(g *Generator) {
		g.minShift, g.maxShift = lo, hi
	}
}

// WithAlphabet sets the alphabet the words are drawn from.
func WithAlphabet(a cipher.Alphabet) Option {
	return func(g *Generator) {
		g.alphabet = a
	}
}

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// NewGenerator validates the configuration and returns a generator.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		words:    DefaultWords,
		minShift: DefaultMinShift,
		maxShift: DefaultMaxShift,
		alphabet: cipher.Latin,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if len(g.words) == 0 {
		return nil, ErrNoWords
	}
	words, err := slicest.MapX(g.words, func(w string) (string, error) {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !g.alphabet.ContainsAll(w) {
			return "", fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		return w, nil
	})
	if err != nil {
		return nil, err
	}
	g.words = words

	if g.minShift < 1 || g.minShift > g.maxShift || g.maxShift >= g.alphabet.Size() {
		return nil, fmt.Errorf("%w: [%d, %d] for alphabet of %d",
			ErrInvalidShiftRange, g.minShift, g.maxShift, g.alphabet.Size())
	}

	return g, nil
}

// Words returns the normalised word list.
func (g *Generator) Words() []string {
	return append([]string(nil), g.words...)
}

// Generate picks a word, a shift in [min, max] and a direction, each
// uniformly at random.
func (g *Generator) Generate() Question {
	plain := g.words[g.rng.Intn(len(g.words))]
	shift := g.minShift + g.rng.Intn(g.maxShift-g.minShift+1)
	encrypt := g.rng.Intn(2) == 0

	ciphered := g.alphabet.Shift(plain, shift)
	if encrypt {
		return Question{Prompt: plain, Answer: ciphered, Shift: shift, Direction: cipher.Encrypt}
	}
	return Question{Prompt: ciphered, Answer: plain, Shift: shift, Direction: cipher.Decrypt}
}
