package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

// renderCategoryBar shows the active language's categories, numbered for
// the 1-7 shortcuts.
func renderCategoryBar(categories []string, active string, width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	parts := make([]string, 0, len(categories))
	for i, c := range categories {
		style := tabInactiveStyle
		if c == active {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d %s", i+1, c)))
	}

	// Stop before the row would exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}

// renderLanguageTabs shows each language by its own name.
func renderLanguageTabs(active lang.Language) string {
	parts := make([]string, 0, len(lang.All))
	for _, l := range lang.All {
		if l == active {
			parts = append(parts, tabActiveStyle.Render(l.Label()))
		} else {
			parts = append(parts, tabInactiveStyle.Render(l.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// categoryAt maps a 1-based shortcut to a label.
func categoryAt(categories []string, key string) (string, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return "", false
	}
	idx := int(key[0] - '1')
	if idx >= len(categories) {
		return "", false
	}
	return categories[idx], true
}

// nextCategory cycles through categories, starting over after the last.
func nextCategory(categories []string, active string) string {
	for i, c := range categories {
		if c == active {
			return categories[(i+1)%len(categories)]
		}
	}
	if len(categories) == 0 {
		return ""
	}
	return categories[0]
}
