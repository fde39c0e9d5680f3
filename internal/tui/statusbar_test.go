package tui

import (
	"strings"
	"testing"
	"time"
)

func TestUntilNext(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		next time.Time
		want string
	}{
		{time.Time{}, ""},
		{now.Add(-time.Minute), ""},
		{now.Add(10 * time.Minute), "in 10m"},
		{now.Add(9*time.Minute + time.Second), "in 10m"},
		{now.Add(20 * time.Second), "in 1m"},
	}
	for _, tt := range tests {
		if got := untilNext(tt.next, now); got != tt.want {
			t.Errorf("untilNext(%v) = %q, want %q", tt.next.Sub(now), got, tt.want)
		}
	}
}

func TestStatusBarShowsNextRefresh(t *testing.T) {
	bar := renderStatusBar(statusInfo{count: 3, nextRefresh: time.Now().Add(5 * time.Minute)}, 160)
	if !strings.Contains(bar, "next in 5m") {
		t.Errorf("expected next refresh in status bar, got %q", bar)
	}

	bar = renderStatusBar(statusInfo{count: 3, loading: true, nextRefresh: time.Now().Add(5 * time.Minute)}, 160)
	if strings.Contains(bar, "next in") {
		t.Errorf("next refresh shown while loading: %q", bar)
	}
}
