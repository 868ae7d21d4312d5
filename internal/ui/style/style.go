// Package style holds the colours and icons shared by the logger and the
// run renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Amber = lipgloss.Color("#F2A541")
	Gray  = lipgloss.Color("#8A8F98")
	Slate = lipgloss.Color("#667085")
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
	Cyan  = lipgloss.Color("#2BB3C0")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "·"
)

// Foreground returns the colour as a termenv-compatible hex string.
func Foreground(c lipgloss.Color) string {
	return string(c)
}
