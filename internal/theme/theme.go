// Package theme decides between the dark and light palettes.
package theme

import "github.com/charmbracelet/lipgloss"

const (
	Dark  = "dark"
	Light = "light"
)

// Resolve returns whether the dark palette is active. A saved value wins;
// anything else defers to the terminal.
func Resolve(saved string, systemDark bool) bool {
	switch saved {
	case Dark:
		return true
	case Light:
		return false
	default:
		return systemDark
	}
}

// SystemDark reports whether the terminal background is dark.
var SystemDark = lipgloss.HasDarkBackground

// Apply forces every adaptive color onto the chosen palette.
func Apply(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// Value is the literal stored for dark.
func Value(dark bool) string {
	if dark {
		return Dark
	}
	return Light
}
