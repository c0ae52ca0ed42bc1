package ui

import "github.com/charmbracelet/lipgloss"

// Colors shared by the prompts and the report printer.
var (
	Yellow  = lipgloss.AdaptiveColor{Light: "3", Dark: "11"}
	Red     = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	Green   = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	Plain   = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}
	Cyan    = lipgloss.AdaptiveColor{Light: "6", Dark: "14"}
	Magenta = lipgloss.AdaptiveColor{Light: "5", Dark: "13"}
	Gray    = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
)

// NewStyle returns a new lipgloss style.
func NewStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

var (
	_titleStyle       = NewStyle().Foreground(Green).Bold(true)
	_descriptionStyle = NewStyle().Foreground(Gray).Faint(true)
	_acceptedStyle    = NewStyle().Faint(true)
	_errorStyle       = NewStyle().Foreground(Red)
	_keyStyle         = NewStyle().Foreground(Magenta)
	_cursorStyle      = NewStyle().Foreground(Yellow)
	_highlightStyle   = NewStyle().Foreground(Cyan)
)
