// Package news fetches AI-generated technology stories and normalizes them
// into items the reader can render.
package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/matheuskafuri/hunttech/internal/ai"
	"github.com/matheuskafuri/hunttech/internal/lang"
)

// Item is one story as shown on a card. Items are produced fresh on every
// fetch; ID is only unique within a batch.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	Timestamp   string `json:"timestamp"`
	ImageURL    string `json:"imageUrl"`
	URL         string `json:"url,omitempty"`
}

// Fields upstream must fill in for every story.
var itemFields = []string{"id", "title", "description", "content", "category", "source", "timestamp", "imageUrl"}

// Query describes one fetch.
type Query struct {
	Category    string
	Language    lang.Language
	Preferences []string
}

// Status tags the outcome of a fetch.
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of Fetch. Items is never nil.
type Result struct {
	Items  []Item
	Status Status
	Err    error
}

var (
	// ErrUpstream covers transport, HTTP and API-level failures.
	ErrUpstream = errors.New("upstream request failed")
	// ErrMalformed means the response text was not a JSON array of objects.
	ErrMalformed = errors.New("malformed upstream response")
)

const (
	defaultStoryCount = 50
	defaultWindow     = 48 * time.Hour
	imageURLFormat    = "https://picsum.photos/seed/%s/800/450"
)

// Fetcher runs the fetch pipeline against a generator.
type Fetcher struct {
	gen        ai.Generator
	storyCount int
	window     time.Duration
	log        *logrus.Entry
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithStoryCount sets how many stories each fetch asks for.
func WithStoryCount(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.storyCount = n
		}
	}
}

// WithWindow sets how far back stories may come from.
func WithWindow(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.window = d
		}
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.log = l
		}
	}
}

func NewFetcher(gen ai.Generator, opts ...Option) *Fetcher {
	f := &Fetcher{
		gen:        gen,
		storyCount: defaultStoryCount,
		window:     defaultWindow,
		log:        logrus.WithField("component", "news"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchNews never fails: any error is logged and yields an empty slice.
func (f *Fetcher) FetchNews(ctx context.Context, category string, language lang.Language, preferences []string) []Item {
	return f.Fetch(ctx, Query{Category: category, Language: language, Preferences: preferences}).Items
}

// Fetch issues one upstream request and reports whether it produced stories,
// produced none, or failed.
func (f *Fetcher) Fetch(ctx context.Context, q Query) Result {
	q = q.withDefaults()
	log := f.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"language":   q.Language.String(),
		"category":   q.Category,
	})

	start := time.Now()
	resp, err := f.gen.Generate(ctx, ai.Request{
		Prompt: f.buildPrompt(q),
		Schema: ai.ObjectArray(itemFields...),
		Search: true,
	})
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUpstream, err)
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			// Superseded by a newer fetch
			log.WithError(err).Debug("fetch cancelled")
			return Result{Items: []Item{}, Status: StatusFailed, Err: err}
		}
		return failed(log, err)
	}

	items, err := parseItems(resp.Text)
	if err != nil {
		return failed(log, err)
	}
	items = normalize(items, resp.Sources)

	status := StatusOK
	if len(items) == 0 {
		status = StatusEmpty
	}
	log.WithFields(logrus.Fields{
		"items":    len(items),
		"sources":  len(resp.Sources),
		"status":   status.String(),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("fetched news")
	return Result{Items: items, Status: status}
}

func failed(log *logrus.Entry, err error) Result {
	log.WithError(err).WithField("status", StatusFailed.String()).Error("fetching news")
	return Result{Items: []Item{}, Status: StatusFailed, Err: err}
}

func (q Query) withDefaults() Query {
	q.Language = q.Language.Or(lang.Default)
	q.Category = strings.TrimSpace(q.Category)
	if q.Category == "" {
		q.Category = lang.DefaultCategory(q.Language)
	}
	return q
}

func (f *Fetcher) buildPrompt(q Query) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find %d trending technology news stories from the last %s.", f.storyCount, windowPhrase(f.window))
	if !lang.IsAllCategory(q.Language, q.Category) {
		fmt.Fprintf(&b, " Focus on the category %q.", q.Category)
	}
	b.WriteString(" For each story return an object with the fields ")
	b.WriteString(strings.Join(itemFields, ", "))
	b.WriteString(".")
	fmt.Fprintf(&b, " Write title, description, content, category and timestamp in %s.", q.Language.Name())
	b.WriteString(" The timestamp is a short relative time such as \"2 hours ago\".")

	prefs := cleanPreferences(q.Preferences)
	if len(prefs) > 0 {
		fmt.Fprintf(&b, " Prioritize these interests: %s.", strings.Join(prefs, ", "))
	}
	return b.String()
}

func cleanPreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func windowPhrase(d time.Duration) string {
	hours := int(d.Hours())
	switch {
	case hours <= 1:
		return "hour"
	case hours%24 == 0 && hours > 48:
		return fmt.Sprintf("%d days", hours/24)
	default:
		return fmt.Sprintf("%d hours", hours)
	}
}

// parseItems decodes the generated text. Empty text counts as an empty array.
func parseItems(text string) ([]Item, error) {
	text = ai.StripCodeFence(text)
	if text == "" {
		return []Item{}, nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// normalize swaps in placeholder images and assigns grounding sources
// round-robin by position.
func normalize(items []Item, sources []string) []Item {
	urls := make([]string, 0, len(sources))
	for _, s := range sources {
		if s = strings.TrimSpace(s); s != "" {
			urls = append(urls, s)
		}
	}

	out := make([]Item, len(items))
	for i, it := range items {
		seed := it.ID
		if seed == "" {
			seed = fmt.Sprintf("%d-%s", i, uuid.NewString())
		}
		it.ImageURL = fmt.Sprintf(imageURLFormat, url.PathEscape(seed))
		it.URL = ""
		if len(urls) > 0 {
			it.URL = urls[i%len(urls)]
		}
		out[i] = it
	}
	return out
}
