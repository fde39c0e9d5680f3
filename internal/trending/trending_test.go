package trending

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Front page</title>
  <item><title>First story</title><link>https://example.com/1</link></item>
  <item><title>   </title><link>https://example.com/blank</link></item>
  <item><title>Second   story</title><link>https://example.com/2</link></item>
  <item><title>Third story</title><link>https://example.com/3</link></item>
  <item><title>Fourth story</title><link>https://example.com/4</link></item>
</channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom</title>
  <entry><title>Atom entry</title><id>urn:1</id><updated>2026-01-01T00:00:00Z</updated></entry>
</feed>`

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRSS(t *testing.T) {
	srv := feedServer(t, http.StatusOK, rssFeed)

	titles, err := Fetch(context.Background(), srv.URL, 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := []string{"First story", "Second story", "Third story"}
	if len(titles) != len(want) {
		t.Fatalf("expected %d titles, got %v", len(want), titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("title %d = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestFetchAtom(t *testing.T) {
	srv := feedServer(t, http.StatusOK, atomFeed)
	titles, err := Fetch(context.Background(), srv.URL, 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(titles) != 1 || titles[0] != "Atom entry" {
		t.Errorf("unexpected titles %v", titles)
	}
}

func TestFetchErrors(t *testing.T) {
	if _, err := Fetch(context.Background(), "", 3); err == nil {
		t.Error("expected error for empty url")
	}
	srv := feedServer(t, http.StatusInternalServerError, "boom")
	if _, err := Fetch(context.Background(), srv.URL, 3); err == nil {
		t.Error("expected error for 500")
	}
}

func TestTitlesFallback(t *testing.T) {
	srv := feedServer(t, http.StatusOK, "not a feed")

	got := Titles(context.Background(), srv.URL, 2, lang.Hindi)
	want := lang.TrendingFallback(lang.Hindi)[:2]
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected fallback %v, got %v", want, got)
	}
}

func TestTitlesEmptyFeedFallsBack(t *testing.T) {
	srv := feedServer(t, http.StatusOK, `<?xml version="1.0"?><rss version="2.0"><channel><title>x</title></channel></rss>`)
	got := Titles(context.Background(), srv.URL, 3, lang.English)
	if len(got) != 3 || got[0] != lang.TrendingFallback(lang.English)[0] {
		t.Errorf("expected english fallback, got %v", got)
	}
}

func TestTitlesFromFeed(t *testing.T) {
	srv := feedServer(t, http.StatusOK, rssFeed)
	got := Titles(context.Background(), srv.URL, 0, lang.Bengali)
	if len(got) != 3 || got[0] != "First story" {
		t.Errorf("unexpected titles %v", got)
	}
}

func TestTitlesWithoutFeed(t *testing.T) {
	got := Titles(context.Background(), "", 2, lang.Bengali)
	want := lang.TrendingFallback(lang.Bengali)[:2]
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Titles without feed = %v, want %v", got, want)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<b>Bold</b> news", "Bold news"},
		{"Why a < b matters", "Why a < b matters"},
		{"<p>Rust &amp; Go</p>", "Rust & Go"},
		{"5 < 6 but <em>7</em> wins", "5 < 6 but 7 wins"},
		{"  spaced   out  ", "spaced out"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanTitle(tt.input); got != tt.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
