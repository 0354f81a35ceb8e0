package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Row    lipgloss.Style
	RowAlt lipgloss.Style
	Dim    lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Main   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("236")),
		Row:    lipgloss.NewStyle(),
		RowAlt: lipgloss.NewStyle().Background(lipgloss.Color("235")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:   lipgloss.NewStyle().Faint(true),
		Main:   lipgloss.NewStyle().Padding(0, 1),
	}
}
