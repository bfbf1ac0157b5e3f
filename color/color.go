// Package color names the terminal colours used outside the pokemon type palette.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a colour value, either an ANSI index or a hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colours, so output follows the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	HiRed  = New("9")
)

// Orange marks key bindings in help text.
var Orange = New("#ffb703")
