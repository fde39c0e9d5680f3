package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/hunttech/internal/news"
)

type statusInfo struct {
	count       int
	loading     bool
	spinner     string
	status      news.Status
	fetchErr    error
	lastUpdated time.Time
	loggedIn    bool
	nextRefresh time.Time
}

func renderStatusBar(s statusInfo, width int) string {
	left := fmt.Sprintf("%d stories", s.count)
	if s.loading {
		left = s.spinner + " " + left + " (refreshing...)"
	} else if !s.lastUpdated.IsZero() {
		left += " · updated " + relativeTime(s.lastUpdated)
	}
	if next := untilNext(s.nextRefresh, time.Now()); !s.loading && next != "" {
		left += " · next " + next
	}
	if !s.loading && s.status == news.StatusFailed && s.fetchErr != nil {
		left += " · " + errorStyle.Render("fetch failed: "+s.fetchErr.Error())
	}

	account := "u login"
	if s.loggedIn {
		account = "u logout"
	}
	right := "r refresh  L lang  d theme  " + account + "  ? help  q quit"

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Narrow terminals keep the status, drop the hints
		right = ""
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return statusBarStyle.Width(width).Render(bar)
}

func renderBottomBar(hints string, width int) string {
	right := " " + hints + " "
	gap := width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(width).Render(fmt.Sprintf("%*s", gap, "") + right)
}

// untilNext formats the wait before the next auto-refresh, rounded up to
// whole minutes.
func untilNext(next, now time.Time) string {
	if next.IsZero() {
		return ""
	}
	d := next.Sub(now)
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("in %dm", int(math.Ceil(d.Minutes())))
}
