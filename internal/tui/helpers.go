// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"cmp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/util/slicest"
)

// Clamp bounds wanted to [lo, hi].
func Clamp[T cmp.Ordered](lo, wanted, hi T) T {
	return min(max(lo, wanted), hi)
}

// size tracks the last window size.
type size struct {
	Width  int
	Height int
}

func (s *size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// alphabetTable renders the substitution table: plain row, arrows, shifted
// row. The shifted row comes from the engine applied to the alphabet itself.
func alphabetTable(a cipher.Alphabet, magnitude int, dir cipher.Direction) (plain, arrows, shifted string) {
	plainCells := slicest.Map(a.Symbols(), func(r rune) string {
		return plainCellStyle.Render(string(r))
	})
	arrowCells := slicest.Map(a.Symbols(), func(rune) string {
		return arrowStyle.Render("↓")
	})
	shiftedCells := slicest.Map([]rune(a.Shifted(magnitude, dir)), func(r rune) string {
		return shiftedCellStyle.Render(string(r))
	})

	return strings.Join(plainCells, " "), strings.Join(arrowCells, " "), strings.Join(shiftedCells, " ")
}
