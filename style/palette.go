package style

import "github.com/charmbracelet/lipgloss"

// Screen chrome colours. Pokemon types and artwork themes bring their own.
var (
	Text     = lipgloss.Color("#cdd6f4")
	Base     = lipgloss.Color("#1e1e2e")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor = lipgloss.Color("#cba6f7")
)
