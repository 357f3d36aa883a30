package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme maps each kind of report text to a color.
type Theme struct {
	Heading  string // section titles
	Label    string // summary labels
	Count    string // attempt counts
	Value    string // time range values
	IP       string // addresses in the IP table
	Username string // names in the username table
	Muted    string // secondary notes
}

// DefaultTheme uses ANSI 256 colors that read on dark and light terminals.
var DefaultTheme = Theme{
	Heading:  "171", // magenta
	Label:    "44",  // cyan
	Count:    "220", // yellow
	Value:    "252", // light gray
	IP:       "203", // red
	Username: "111", // light blue
	Muted:    "245", // gray
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Heading  lipgloss.Style
	Label    lipgloss.Style
	Count    lipgloss.Style
	Value    lipgloss.Style
	IP       lipgloss.Style
	Username lipgloss.Style
	Muted    lipgloss.Style
}

// Styles returns styles for this theme bound to renderer r.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().
			Foreground(lipgloss.Color(t.Heading)).
			Bold(true),

		Label: r.NewStyle().
			Foreground(lipgloss.Color(t.Label)),

		Count: r.NewStyle().
			Foreground(lipgloss.Color(t.Count)).
			Bold(true),

		Value: r.NewStyle().
			Foreground(lipgloss.Color(t.Value)),

		IP: r.NewStyle().
			Foreground(lipgloss.Color(t.IP)),

		Username: r.NewStyle().
			Foreground(lipgloss.Color(t.Username)),

		Muted: r.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Faint(true),
	}
}
