package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`██╗  ██╗██╗   ██╗███╗   ██╗████████╗`,
	`██║  ██║██║   ██║████╗  ██║╚══██╔══╝`,
	`███████║██║   ██║██╔██╗ ██║   ██║   `,
	`██╔══██║██║   ██║██║╚██╗██║   ██║   `,
	`██║  ██║╚██████╔╝██║ ╚████║   ██║   `,
	`╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   `,
}

var asciiTech = []string{
	`████████╗███████╗ ██████╗██╗  ██╗`,
	`╚══██╔══╝██╔════╝██╔════╝██║  ██║`,
	`   ██║   █████╗  ██║     ███████║`,
	`   ██║   ██╔══╝  ██║     ██╔══██║`,
	`   ██║   ███████╗╚██████╗██║  ██║`,
	`   ╚═╝   ╚══════╝ ╚═════╝╚═╝  ╚═╝`,
}

// renderHomeScreen is the splash shown at start-up while the first fetch
// runs in the background.
func renderHomeScreen(width, height int, welcome, loading, updateVersion string) string {
	huntStyle := lipgloss.NewStyle().Foreground(colorText)
	techStyle := lipgloss.NewStyle().Foreground(colorBrand)
	keyStyle := lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	var lines []string
	for i := range asciiLogo {
		lines = append(lines, huntStyle.Render(asciiLogo[i])+techStyle.Render(asciiTech[i]))
	}
	lines = append(lines, "", "")
	lines = append(lines, "          "+welcomeStyle.Render(welcome))
	if loading != "" {
		lines = append(lines, "          "+headerDimStyle.Render(loading))
	}
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[enter]")+"  "+labelStyle.Render("Read the news"))
	lines = append(lines, "          "+keyStyle.Render("[q]")+"      "+labelStyle.Render("Quit"))

	if updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, "          "+techStyle.Render("Update available: v"+updateVersion))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
