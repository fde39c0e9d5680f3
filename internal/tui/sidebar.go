package tui

import (
	"fmt"
	"strings"
)

// renderTrending draws the "Trending Now" sidebar.
func renderTrending(title string, titles []string, width, height int) string {
	inner := width - 2
	if inner < 8 {
		inner = 8
	}
	lines := []string{sectionStyle.Render(truncateStr(title, inner)), ""}
	if len(titles) == 0 {
		lines = append(lines, headerDimStyle.Render("..."))
	}
	for i, t := range titles {
		num := itemCategoryStyle.Render(fmt.Sprintf("%02d", i+1))
		wrapped := strings.Split(wrapText(t, inner-3), "\n")
		lines = append(lines, num+" "+itemTitleStyle.Render(wrapped[0]))
		for _, w := range wrapped[1:] {
			lines = append(lines, "   "+itemTitleStyle.Render(w))
		}
		lines = append(lines, "")
	}
	return clipLines(strings.Join(lines, "\n"), height, 0)
}
