package icons

import "github.com/charmbracelet/lipgloss"

var (
	// Fixed colors, not AdaptiveColor, so the terminal is never queried for
	// its background.
	Accent = lipgloss.Color("#7D56F4")
	Muted  = lipgloss.Color("#6B7280")
)

// styles are bound to a renderer so color output follows the destination
// writer, not the process's stdout.
type styles struct {
	banner  lipgloss.Style
	heading lipgloss.Style
	tip     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner:  r.NewStyle().Bold(true).Foreground(Accent),
		heading: r.NewStyle().Bold(true),
		tip:     r.NewStyle().Foreground(Muted),
	}
}
