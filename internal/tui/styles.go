// Package tui renders the terminal screens of the suite: the launcher home
// screen and the node and model satellite screens.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorPanel  = lipgloss.Color("#050505")
	colorText   = lipgloss.Color("#FFFFFF")
	colorAccent = lipgloss.Color("#C80000")
	colorMuted  = lipgloss.Color("#787878")
	colorFaint  = lipgloss.Color("#3C3C3C")
	colorLive   = lipgloss.Color("#00C800")
)

// Styles groups the lipgloss styles shared by all screens.
type Styles struct {
	Title    lipgloss.Style
	Bar      lipgloss.Style
	Muted    lipgloss.Style
	Faint    lipgloss.Style
	Critical lipgloss.Style
	Live     lipgloss.Style
	Button   lipgloss.Style
	Selected lipgloss.Style
	Modal    lipgloss.Style
	Label    lipgloss.Style
}

// DefaultStyles returns the dark suite theme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Bar:      lipgloss.NewStyle().Background(colorPanel).Foreground(colorText).Padding(0, 1),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Faint:    lipgloss.NewStyle().Foreground(colorFaint),
		Critical: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Live:     lipgloss.NewStyle().Foreground(colorLive).Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorFaint).
			Padding(1, 4),
		Selected: lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorAccent).
			Padding(1, 4),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2),
		Label: lipgloss.NewStyle().Foreground(colorMuted).Width(14),
	}
}
