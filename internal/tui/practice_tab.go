// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/logging"
	"github.com/toeirei/caesar/internal/quiz"
)

// practiceModel is the "Practice" tab. It owns the quiz session, and with it
// the score, for as long as the program runs.
type practiceModel struct {
	session *quiz.Session
	input   textinput.Model
	keys    practiceKeyMap
	size    size
}

// newPracticeModel starts the first round straight away.
func newPracticeModel(gen *quiz.Generator) *practiceModel {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = i18n.T("practice.placeholder")

	m := &practiceModel{
		session: quiz.NewSession(gen),
		input:   in,
		keys:    newPracticeKeyMap(),
	}
	m.next()
	return m
}

func (m *practiceModel) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *practiceModel) ShortHelp() []key.Binding { return m.keys.ShortHelp() }

func (m *practiceModel) FullHelp() [][]key.Binding { return m.keys.FullHelp() }

func (m *practiceModel) Blur() {
	m.input.Blur()
}

func (m *practiceModel) next() {
	q := m.session.Next()
	m.input.Reset()
	logging.Debugf("practice: new question %s shift=%d", q.Direction, q.Shift)
}

func (m *practiceModel) check() {
	fb, err := m.session.Submit(m.input.Value())
	if err != nil {
		logging.Warnf("practice: %v", err)
		return
	}
	score := m.session.Score()
	logging.Debugf("practice: correct=%t score=%d/%d", fb.Correct, score.Correct, score.Total)
}

func (m *practiceModel) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.input.Width = max(m.size.Width-10, 10)
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Check):
			m.check()
			return nil
		case key.Matches(msg, m.keys.Next):
			m.next()
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *practiceModel) View() string {
	score := m.session.Score()
	parts := []string{
		titleStyle.Render(i18n.T("practice.title")),
		"",
		helpStyle.Render(i18n.T("practice.score", score.Correct, score.Total, score.Percent())),
		"",
	}

	q, ok := m.session.Current()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	instruction := i18n.T("practice.prompt_encrypt", q.Shift)
	if q.Direction == cipher.Decrypt {
		instruction = i18n.T("practice.prompt_decrypt", q.Shift)
	}
	parts = append(parts,
		instruction,
		promptStyle.Render(q.Prompt),
		"",
		m.input.View(),
	)

	if fb, shown := m.session.Feedback(); shown {
		if fb.Correct {
			parts = append(parts, "", successStyle.Render(i18n.T("practice.correct")))
		} else {
			parts = append(parts, "", errorStyle.Render(i18n.T("practice.wrong", fb.Expected)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
