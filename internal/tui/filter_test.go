package tui

import (
	"testing"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

func TestCategoryAt(t *testing.T) {
	cats := lang.Categories(lang.English)
	if got, ok := categoryAt(cats, "1"); !ok || got != "All News" {
		t.Errorf("categoryAt(1) = %q, %v", got, ok)
	}
	if got, ok := categoryAt(cats, "7"); !ok || got != "Internet" {
		t.Errorf("categoryAt(7) = %q, %v", got, ok)
	}
	for _, key := range []string{"8", "0", "a", "12"} {
		if _, ok := categoryAt(cats, key); ok {
			t.Errorf("categoryAt(%q) should not match", key)
		}
	}
}

func TestNextCategory(t *testing.T) {
	cats := []string{"a", "b", "c"}
	tests := []struct{ active, want string }{
		{"a", "b"},
		{"c", "a"},
		{"unknown", "a"},
	}
	for _, tt := range tests {
		if got := nextCategory(cats, tt.active); got != tt.want {
			t.Errorf("nextCategory(%q) = %q, want %q", tt.active, got, tt.want)
		}
	}
	if nextCategory(nil, "a") != "" {
		t.Error("expected empty for no categories")
	}
}
