package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Radio        lipgloss.Style
	RadioChecked lipgloss.Style
	SelectionBg  lipgloss.Style
	Glyph        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Bold(true),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			MarginTop(1),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Radio:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RadioChecked: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		SelectionBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Glyph:        lipgloss.NewStyle().Width(4),
	}
}
