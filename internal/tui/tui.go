// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Caesar.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that switches between the Cipher and Practice tabs.
package tui // import "github.com/toeirei/caesar/internal/tui"

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/caesar/buildvars"
	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/clipboard"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/quiz"
)

// tab identifies which page is shown.
type tab int

const (
	cipherTab tab = iota
	practiceTab
	tabCount
)

// Options carries everything the TUI needs from configuration.
type Options struct {
	Alphabet  cipher.Alphabet
	Shift     int
	Direction cipher.Direction
	Generator *quiz.Generator
	Clipboard clipboard.Writer
}

// tabModel is what every tab implements. Update mutates in place.
type tabModel interface {
	Update(tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
	help.KeyMap
}

// mainModel is the top-level model. It routes messages to the active tab and
// renders the tab bar and footer around it.
type mainModel struct {
	active   tab
	cipher   *cipherModel
	practice *practiceModel
	keys     globalKeyMap
	help     help.Model
	size     size
}

func newMainModel(opts Options) (mainModel, error) {
	if opts.Alphabet.Size() == 0 {
		opts.Alphabet = cipher.Latin
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Disabled{}
	}
	if opts.Generator == nil {
		gen, err := quiz.NewGenerator(quiz.WithAlphabet(opts.Alphabet))
		if err != nil {
			return mainModel{}, fmt.Errorf("create quiz generator: %w", err)
		}
		opts.Generator = gen
	}

	m := mainModel{
		active:   cipherTab,
		cipher:   newCipherModel(opts.Alphabet, opts.Shift, opts.Direction, opts.Clipboard),
		practice: newPracticeModel(opts.Generator),
		keys:     newGlobalKeyMap(),
		help:     help.New(),
	}
	m.cipher.Focus()
	return m, nil
}

// Run starts the TUI in the alternate screen and blocks until it exits.
func Run(opts Options) error {
	m, err := newMainModel(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(i18n.T("app.title")), m.current().Focus())
}

func (m mainModel) current() tabModel {
	if m.active == practiceTab {
		return m.practice
	}
	return m.cipher
}

func (m mainModel) switchTo(t tab) (mainModel, tea.Cmd) {
	m.current().Blur()
	m.active = t
	return m, m.current().Focus()
}

// Update handles global keys and window sizes, then delegates to the
// active tab.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			return m.switchTo((m.active + 1) % tabCount)
		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTo((m.active + tabCount - 1) % tabCount)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.help.Width = msg.Width
		// Both tabs need the size, not only the visible one.
		return m, tea.Batch(m.cipher.Update(msg), m.practice.Update(msg))
	}

	return m, m.current().Update(msg)
}

func (m mainModel) tabBar() string {
	labels := []string{i18n.T("tab.cipher"), i18n.T("tab.practice")}
	rendered := make([]string, len(labels))
	for i, l := range labels {
		if tab(i) == m.active {
			rendered[i] = activeTabStyle.Render(l)
		} else {
			rendered[i] = tabStyle.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m mainModel) footer() string {
	keys := mergedKeyMap{m.current(), m.keys}
	var helpView string
	if m.help.ShowAll {
		helpView = m.help.FullHelpView(keys.FullHelp())
	} else {
		helpView = m.help.ShortHelpView(keys.ShortHelp())
	}
	version := helpStyle.Render(buildvars.VersionOrDefault("dev"))
	return AlignFooter(helpView, version, max(m.size.Width-4, 0))
}

func (m mainModel) View() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		"",
		m.current().View(),
		"",
		m.footer(),
	))
}
