package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Loading     lipgloss.Style
	Dim         lipgloss.Style
	Filter      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Points      lipgloss.Style
	Comments    lipgloss.Style
	Author      lipgloss.Style
	URL         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")). // HN orange
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Points:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Comments:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Author:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		URL:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
