// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/clipboard"
	"github.com/toeirei/caesar/internal/i18n"
)

// cipherModel is the "Cipher" tab: the substitution table, shift control,
// mode toggle and the encrypt/decrypt text tool.
type cipherModel struct {
	alphabet cipher.Alphabet
	shift    int
	dir      cipher.Direction
	input    textinput.Model
	output   string
	status   string
	clip     clipboard.Writer
	keys     cipherKeyMap
	size     size
}

func newCipherModel(a cipher.Alphabet, shift int, dir cipher.Direction, clip clipboard.Writer) *cipherModel {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 0

	m := &cipherModel{
		alphabet: a,
		shift:    Clamp(0, shift, a.Size()-1),
		dir:      dir,
		input:    in,
		clip:     clip,
		keys:     newCipherKeyMap(),
	}
	m.input.Placeholder = m.placeholder()
	return m
}

func (m *cipherModel) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *cipherModel) ShortHelp() []key.Binding { return m.keys.ShortHelp() }

func (m *cipherModel) FullHelp() [][]key.Binding { return m.keys.FullHelp() }

func (m *cipherModel) Blur() {
	m.input.Blur()
}

// setMode switches direction and clears input, output and shift.
func (m *cipherModel) setMode(dir cipher.Direction) {
	m.dir = dir
	m.shift = 0
	m.input.Reset()
	m.output = ""
	m.status = ""
	m.input.Placeholder = m.placeholder()
}

// process runs the engine on the input unless it is blank.
func (m *cipherModel) process() {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return
	}
	m.output = m.alphabet.Apply(text, m.shift, m.dir)
	m.status = ""
}

func (m *cipherModel) copyOutput() {
	if clipboard.Copy(m.clip, m.output) {
		m.status = i18n.T("cipher.copied")
	}
}

func (m *cipherModel) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.input.Width = max(m.size.Width-10, 10)
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.ShiftUp):
			m.shift = Clamp(0, m.shift+1, m.alphabet.Size()-1)
			return nil
		case key.Matches(msg, m.keys.ShiftDown):
			m.shift = Clamp(0, m.shift-1, m.alphabet.Size()-1)
			return nil
		case key.Matches(msg, m.keys.Encrypt):
			m.setMode(cipher.Encrypt)
			return nil
		case key.Matches(msg, m.keys.Decrypt):
			m.setMode(cipher.Decrypt)
			return nil
		case key.Matches(msg, m.keys.Process):
			m.process()
			return nil
		case key.Matches(msg, m.keys.Copy):
			m.copyOutput()
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *cipherModel) placeholder() string {
	if m.dir == cipher.Decrypt {
		return i18n.T("cipher.placeholder_decrypt")
	}
	return i18n.T("cipher.placeholder_encrypt")
}

func (m *cipherModel) View() string {
	plain, arrows, shifted := alphabetTable(m.alphabet, m.shift, m.dir)
	table := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(i18n.T("cipher.plain_row")),
		plain,
		arrows,
		labelStyle.Render(i18n.T("cipher.shifted_row")),
		shifted,
	)

	shiftLine := valueStyle.Render(i18n.T("cipher.shift", m.shift))

	encBtn, decBtn := buttonStyle, buttonStyle
	if m.dir == cipher.Decrypt {
		decBtn = activeButtonStyle
	} else {
		encBtn = activeButtonStyle
	}
	modes := lipgloss.JoinHorizontal(lipgloss.Top,
		encBtn.Render(i18n.T("cipher.mode_encrypt")),
		"  ",
		decBtn.Render(i18n.T("cipher.mode_decrypt")),
	)

	processHint := i18n.T("cipher.process_encrypt")
	if m.dir == cipher.Decrypt {
		processHint = i18n.T("cipher.process_decrypt")
	}

	outWidth := max(m.size.Width-10, 20)
	output := outputBoxStyle.Width(outWidth).Render(m.output)

	parts := []string{
		titleStyle.Render(i18n.T("app.title")),
		"",
		table,
		"",
		shiftLine,
		"",
		modes,
		"",
		labelStyle.Render(i18n.T("cipher.input_label")),
		m.input.View(),
		helpStyle.Render("enter: " + processHint),
		"",
		labelStyle.Render(i18n.T("cipher.output_label")),
		output,
	}
	if m.status != "" {
		parts = append(parts, statusMessageStyle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
