package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/matheuskafuri/hunttech/internal/config"
)

// Schema types understood by the upstream response-schema feature.
const (
	TypeArray  = "ARRAY"
	TypeObject = "OBJECT"
	TypeString = "STRING"
)

// Schema declares the JSON shape the response must follow.
type Schema struct {
	Type       string             `json:"type"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// ObjectArray builds an array-of-objects schema whose listed fields are all
// required strings.
func ObjectArray(fields ...string) *Schema {
	props := make(map[string]*Schema, len(fields))
	for _, f := range fields {
		props[f] = &Schema{Type: TypeString}
	}
	required := make([]string, len(fields))
	copy(required, fields)
	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type:       TypeObject,
			Properties: props,
			Required:   required,
		},
	}
}

// Request is one generation call.
type Request struct {
	Prompt string
	Schema *Schema
	// Search lets upstream ground its answer with web search.
	Search bool
}

// Response holds the generated text and any grounding source URIs.
type Response struct {
	Text    string
	Sources []string
}

// Generator produces structured content from a prompt.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// ErrNotConfigured means no API key was found.
var ErrNotConfigured = errors.New("AI not configured (set " + config.EnvAPIKey + " or ai.api_key)")

// Disabled is the Generator used when no API key is available. Every call
// fails with ErrNotConfigured, so fetches fail soft instead of the program
// refusing to start.
type Disabled struct{}

func (Disabled) Generate(context.Context, Request) (Response, error) {
	return Response{}, ErrNotConfigured
}

// New creates a Generator from the given AI config.
func New(cfg *config.AIConfig, apiKey string, timeout time.Duration) (Generator, error) {
	if cfg == nil || apiKey == "" {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	switch cfg.Provider {
	case "", "gemini":
		opts := []Option{WithHTTPClient(&http.Client{Timeout: timeout})}
		if cfg.Model != "" {
			opts = append(opts, WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		return NewGemini(apiKey, opts...), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: gemini)", cfg.Provider)
	}
}

var codeFence = regexp.MustCompile("(?s)^\\s*```(?:json)?\\s*(.*?)\\s*```\\s*$")

// StripCodeFence removes a markdown code fence wrapped around s.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFence.FindStringSubmatch(s); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return s
}
