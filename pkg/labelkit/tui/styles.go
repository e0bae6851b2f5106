package tui

import (
	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#008080")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD"))

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#008080"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	noColorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// swatch renders c as a block of background color. Alpha is dropped since
// terminals cannot blend.
func swatch(c labelkit.Color) string {
	hex := c.Hex()
	if len(hex) < 7 {
		return noColorStyle.Render("   ")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex[:7])).Render("   ")
}
