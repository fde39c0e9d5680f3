// Package extract pulls the readable text out of a story's source page.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

const (
	defaultMaxChars = 4000
	maxBodyBytes    = 5 << 20
	userAgent       = "Mozilla/5.0 (compatible; hunttech/1.0)"
)

var ErrUnsupportedURL = errors.New("only http and https URLs can be extracted")

type Extractor struct {
	client   *http.Client
	maxChars int
}

type Option func(*Extractor)

func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		if d > 0 {
			e.client.Timeout = d
		}
	}
}

// WithMaxChars caps the returned text, counted in runes.
func WithMaxChars(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxChars = n
		}
	}
}

func New(opts ...Option) *Extractor {
	e := &Extractor{
		client:   &http.Client{Timeout: 15 * time.Second},
		maxChars: defaultMaxChars,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Text downloads rawURL and returns its main readable text.
func (e *Extractor) Text(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid URL: %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedURL, u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", u.Host, resp.StatusCode)
	}

	article, err := readability.FromReader(io.LimitReader(resp.Body, maxBodyBytes), u)
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no readable content at %s", u.Host)
	}
	return truncate(text, e.maxChars), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
