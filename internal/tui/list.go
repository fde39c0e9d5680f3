package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/hunttech/internal/news"
)

// relativeTime formats when the feed was last updated. Story timestamps
// come from upstream already formatted and are shown verbatim.
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2 15:04")
	}
}

func renderCard(it news.Item, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(it.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(it.Title, width-4))
	}

	meta := it.Source
	if it.Timestamp != "" {
		meta += " · " + it.Timestamp
	}
	metaLine := "  " + itemCategoryStyle.Render(truncateStr(it.Category, width/3)) + " " +
		itemMetaStyle.Render(truncateStr(meta, width-4-lipgloss.Width(it.Category)))

	return title + "\n" + metaLine
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// visibleRange returns the [start, end) window of n rows that keeps cursor
// on screen.
func visibleRange(n, cursor, visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > n {
		end = n
		start = end - visible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func renderList(items []news.Item, cursor, height, width int, empty string) string {
	if len(items) == 0 {
		return lipglossCenter(empty, width, height)
	}

	// Each card is 2 lines + 1 blank line
	start, end := visibleRange(len(items), cursor, height/3)

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderCard(items[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
