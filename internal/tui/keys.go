// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/toeirei/caesar/internal/i18n"
)

// globalKeyMap holds bindings that work on every tab. Help texts are looked
// up when the map is built, so i18n must be initialised first.
type globalKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newGlobalKeyMap() globalKeyMap {
	return globalKeyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", i18n.T("keys.next_tab"))),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", i18n.T("keys.prev_tab"))),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", i18n.T("keys.help"))),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", i18n.T("keys.quit"))),
	}
}

func (k globalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Help, k.Quit}
}

func (k globalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextTab, k.PrevTab}, {k.Help, k.Quit}}
}

type cipherKeyMap struct {
	ShiftUp   key.Binding
	ShiftDown key.Binding
	Encrypt   key.Binding
	Decrypt   key.Binding
	Process   key.Binding
	Copy      key.Binding
}

func newCipherKeyMap() cipherKeyMap {
	return cipherKeyMap{
		ShiftUp:   key.NewBinding(key.WithKeys("ctrl+right", "ctrl+up"), key.WithHelp("ctrl+→", i18n.T("keys.shift_up"))),
		ShiftDown: key.NewBinding(key.WithKeys("ctrl+left", "ctrl+down"), key.WithHelp("ctrl+←", i18n.T("keys.shift_down"))),
		Encrypt:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", i18n.T("keys.encrypt"))),
		Decrypt:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", i18n.T("keys.decrypt"))),
		Process:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("keys.process"))),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", i18n.T("keys.copy"))),
	}
}

func (k cipherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShiftUp, k.ShiftDown, k.Process, k.Copy}
}

func (k cipherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.ShiftUp, k.ShiftDown}, {k.Encrypt, k.Decrypt}, {k.Process, k.Copy}}
}

type practiceKeyMap struct {
	Check key.Binding
	Next  key.Binding
}

func newPracticeKeyMap() practiceKeyMap {
	return practiceKeyMap{
		Check: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("keys.check"))),
		Next:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", i18n.T("keys.next_question"))),
	}
}

func (k practiceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Check, k.Next}
}

func (k practiceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Check, k.Next}}
}

// mergedKeyMap concatenates several key maps for the footer.
type mergedKeyMap []help.KeyMap

func (m mergedKeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, k := range m {
		if k != nil {
			out = append(out, k.ShortHelp()...)
		}
	}
	return out
}

func (m mergedKeyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, k := range m {
		if k != nil {
			out = append(out, k.FullHelp()...)
		}
	}
	return out
}

var (
	_ help.KeyMap = globalKeyMap{}
	_ help.KeyMap = cipherKeyMap{}
	_ help.KeyMap = practiceKeyMap{}
	_ help.KeyMap = mergedKeyMap{}
)
