package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Semantic colors for status indication, as ANSI codes for broad terminal
// compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Color modes accepted by ConfigureColor.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ConfigureColor sets the lipgloss color profile for the process.
// "never" strips all styling, "always" forces ANSI colors even when piped,
// and "auto" (or anything else) strips colors only when isTTY is false.
func ConfigureColor(mode string, isTTY bool) {
	switch mode {
	case ColorModeNever:
		DisableColors()
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
	default:
		if !isTTY {
			DisableColors()
		}
	}
}

// DisableColors switches all rendering to plain text (--no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
