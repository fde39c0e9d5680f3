// Package trending reads the "Trending Now" sidebar headlines from an
// RSS or Atom feed.
package trending

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

// Fetch returns up to n non-empty titles from the feed at url.
func Fetch(ctx context.Context, url string, n int) ([]string, error) {
	if url == "" {
		return nil, fmt.Errorf("no trending feed configured")
	}
	feed, err := gofeed.NewParser().ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching trending feed: %w", err)
	}

	titles := make([]string, 0, n)
	for _, item := range feed.Items {
		if len(titles) >= n {
			break
		}
		title := cleanTitle(item.Title)
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// Titles is Fetch with the localized static list as a fallback.
func Titles(ctx context.Context, url string, n int, l lang.Language) []string {
	if n <= 0 {
		n = 3
	}
	log := logrus.WithFields(logrus.Fields{"component": "trending", "language": l.String()})
	if url == "" {
		log.Debug("no trending feed for language, using built-in list")
		return fallbackTitles(l, n)
	}

	titles, err := Fetch(ctx, url, n)
	if err == nil && len(titles) > 0 {
		return titles
	}

	if err != nil {
		log.WithError(err).Warn("using fallback trending list")
	} else {
		log.Debug("trending feed empty, using fallback list")
	}
	return fallbackTitles(l, n)
}

func fallbackTitles(l lang.Language, n int) []string {
	fallback := lang.TrendingFallback(l)
	if len(fallback) > n {
		fallback = fallback[:n]
	}
	return fallback
}

var markup = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)

// cleanTitle reads the text out of titles that carry HTML tags and
// collapses whitespace. Titles without tags are kept as written, so a bare
// "<" survives.
func cleanTitle(s string) string {
	if markup.MatchString(s) {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
