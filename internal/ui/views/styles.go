package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarTitle  lipgloss.Style
	Shortcut      lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Panel         lipgloss.Style
	PanelBorder   lipgloss.Style
	PanelTitle    lipgloss.Style
	ScrollThumb   lipgloss.Style
	ScrollTrack   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("78")).
			Padding(0, 1),
		SidebarTitle: lipgloss.NewStyle().Bold(true),
		Shortcut:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderTop(false).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		PanelBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PanelTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		ScrollThumb:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ScrollTrack:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}
