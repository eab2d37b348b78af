// package tui provides the terminal user interface for Caesar.
// This file defines the shared lipgloss styles used across the tabs.
package tui // import "github.com/toeirei/caesar/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan
	colorSpecial   = lipgloss.Color("208") // Orange, the original widget's header gradient
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
	colorWhite     = lipgloss.Color("231")
	colorDark      = lipgloss.Color("237")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Section banner, one per tab
	titleStyle = lipgloss.NewStyle().
			Foreground(colorDark).
			Background(colorSpecial).
			Bold(true).
			Padding(0, 2)

	// Tab bar
	tabStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 2)
	activeTabStyle = tabStyle.
			Foreground(colorWhite).
			Background(colorHighlight).
			Bold(true)

	// Alphabet table
	plainCellStyle   = lipgloss.NewStyle().Bold(true)
	arrowStyle       = lipgloss.NewStyle().Foreground(colorHighlight)
	shiftedCellStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSpecial)

	labelStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	valueStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)

	// Mode toggle
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorDark).
			Padding(0, 3)
	activeButtonStyle = buttonStyle.
				Background(colorHighlight).
				Underline(true)

	outputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 2).
			Bold(true).
			Foreground(colorHighlight)

	statusMessageStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(colorWhite).
				Background(colorSuccess)
)
