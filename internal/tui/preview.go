package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/hunttech/internal/news"
)

// renderArticle draws the full story. extracted, when set, is the readable
// text of the source page and is appended under its own heading.
func renderArticle(it *news.Item, extracted string, extracting bool, width, height, scroll int) string {
	if it == nil {
		return lipglossCenter("Select a story", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := articleTitleStyle.Width(contentWidth).Render(it.Title)

	meta := []string{}
	for _, s := range []string{it.Category, it.Source, it.Timestamp} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	metaLine := articleMetaStyle.Render(strings.Join(meta, " · "))

	body := it.Content
	if body == "" {
		body = it.Description
	}
	if body == "" {
		body = "(No content available)"
	}

	parts := []string{title, metaLine, ""}
	if it.Description != "" && it.Description != body {
		parts = append(parts, articleBodyStyle.Bold(true).Width(contentWidth).Render(wrapText(it.Description, contentWidth)), "")
	}
	parts = append(parts, articleBodyStyle.Width(contentWidth).Render(wrapText(body, contentWidth)), "")

	if it.URL != "" {
		parts = append(parts, articleLinkStyle.Width(contentWidth).Render("Source: "+it.URL))
	}
	parts = append(parts, articleLinkStyle.Width(contentWidth).Render("Image: "+it.ImageURL))

	switch {
	case extracting:
		parts = append(parts, "", sectionStyle.Render("From the source"), articleLinkStyle.Render("extracting..."))
	case extracted != "":
		parts = append(parts, "", sectionStyle.Render("From the source"),
			articleBodyStyle.Width(contentWidth).Render(wrapText(extracted, contentWidth)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return clipLines(content, height, scroll)
}

// clipLines applies a scroll offset and pads or cuts content to height.
func clipLines(content string, height, scroll int) string {
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
				out = append(out, line)
				line = w
			} else {
				line += " " + w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
