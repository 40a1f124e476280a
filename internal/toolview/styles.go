package toolview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sitescan/sitescan-cli/internal/tui"
)

// Styles holds the lipgloss styles used by the styled renderers.
type Styles struct {
	styled bool

	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Link     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Banner   lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
	GaugeOn  lipgloss.Style
	GaugeOff lipgloss.Style
}

// NewStyles creates renderer styles from a theme. With styled false every
// style is a no-op, producing plain text output.
func NewStyles(theme tui.Theme, styled bool) Styles {
	if !styled {
		return Styles{}
	}

	return Styles{
		styled:   true,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary.Dark)).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted.Dark)),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Foreground.Dark)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted.Dark)),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary.Dark)).Underline(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success.Dark)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning.Dark)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error.Dark)).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Foreground.Dark)).Bold(true),
		Cell:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Foreground.Dark)),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning.Dark)).Bold(true),
		TabOn:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary.Dark)).Bold(true).Underline(true),
		TabOff:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted.Dark)),
		GaugeOn:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary.Dark)),
		GaugeOff: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border.Dark)),
	}
}

// BandStyle returns the text style for a severity band. The band's color
// table is fixed (see Classify); themes do not override it, so a score shows
// the same severity color everywhere.
func (s Styles) BandStyle(b Band) lipgloss.Style {
	if !s.styled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(b.Colors.Text)).Bold(true)
}

// PriorityStyle returns the style for an issue priority.
func (s Styles) PriorityStyle(p Priority) lipgloss.Style {
	if !s.styled {
		return lipgloss.NewStyle()
	}
	switch p {
	case PriorityHigh:
		return s.Error
	case PriorityMedium:
		return s.Warning
	default:
		return s.Muted
	}
}
