package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.RefreshInterval != "10m" {
		t.Errorf("expected 10m refresh interval, got %q", cfg.RefreshInterval)
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("expected gemini provider, got %q", cfg.AI.Provider)
	}
	if cfg.DefaultLanguage() != lang.Bengali {
		t.Errorf("expected bn default language, got %q", cfg.DefaultLanguage())
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestRefreshDuration(t *testing.T) {
	cfg := &Config{RefreshInterval: "30m"}
	if d := cfg.RefreshDuration(); d != 30*time.Minute {
		t.Errorf("expected 30m, got %v", d)
	}

	cfg.RefreshInterval = "invalid"
	if d := cfg.RefreshDuration(); d != 10*time.Minute {
		t.Errorf("expected 10m default for invalid interval, got %v", d)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		err   bool
	}{
		{"2d", 48 * time.Hour, false},
		{"48h", 48 * time.Hour, false},
		{"90s", 90 * time.Second, false},
		{"d", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDuration(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDuration(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFallbacks(t *testing.T) {
	cfg := &Config{}
	if cfg.StoryCount() != 50 {
		t.Errorf("expected 50 stories, got %d", cfg.StoryCount())
	}
	if cfg.WindowDuration() != 48*time.Hour {
		t.Errorf("expected 48h window, got %v", cfg.WindowDuration())
	}
	if cfg.TrendingCount() != 3 {
		t.Errorf("expected 3 trending titles, got %d", cfg.TrendingCount())
	}
	if cfg.DefaultLanguage() != lang.Bengali {
		t.Errorf("expected bn, got %q", cfg.DefaultLanguage())
	}
}

func TestAIKeyResolution(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvGeminiAPIKey, "")

	cfg := &Config{}
	if cfg.AIEnabled() {
		t.Error("expected AI disabled without a key")
	}

	t.Setenv(EnvGeminiAPIKey, "gemini-key")
	if got := cfg.AIKey(); got != "gemini-key" {
		t.Errorf("expected GEMINI_API_KEY fallback, got %q", got)
	}

	t.Setenv(EnvAPIKey, "hunttech-key")
	if got := cfg.AIKey(); got != "hunttech-key" {
		t.Errorf("expected HUNTTECH_API_KEY to win over GEMINI_API_KEY, got %q", got)
	}

	cfg.AI.APIKey = "config-key"
	if got := cfg.AIKey(); got != "config-key" {
		t.Errorf("expected config key to win, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `language: en
ai:
  story_count: 10
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLanguage() != lang.English {
		t.Errorf("expected en, got %q", cfg.Language)
	}
	if cfg.StoryCount() != 10 {
		t.Errorf("expected 10 stories, got %d", cfg.StoryCount())
	}
	// Fields missing from the file keep their embedded defaults
	if cfg.AI.Model == "" {
		t.Error("expected default model to survive the overlay")
	}
	if cfg.RefreshInterval != "10m" {
		t.Errorf("expected default refresh interval, got %q", cfg.RefreshInterval)
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("expected defaults, got provider %q", cfg.AI.Provider)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("ai: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateUnknownLanguage(t *testing.T) {
	if err := validate(&Config{Language: "fr"}); err == nil {
		t.Error("expected error for unknown language")
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	if err := validate(&Config{AI: AIConfig{Provider: "mystery"}}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestValidateURLScheme(t *testing.T) {
	if err := validate(&Config{Trending: TrendingConfig{URL: "file:///etc/passwd"}}); err == nil {
		t.Error("expected error for file:// trending url")
	}
	if err := validate(&Config{AI: AIConfig{BaseURL: "http://localhost:8080"}}); err != nil {
		t.Errorf("unexpected error for http base url: %v", err)
	}
}

func TestTrendingURLPerLanguage(t *testing.T) {
	cfg := &Config{Trending: TrendingConfig{
		URL:  "https://hnrss.org/frontpage",
		URLs: map[string]string{"hi": "https://example.com/hi.rss"},
	}}
	tests := []struct {
		l    lang.Language
		want string
	}{
		{lang.English, "https://hnrss.org/frontpage"},
		{lang.Hindi, "https://example.com/hi.rss"},
		{lang.Bengali, ""},
	}
	for _, tt := range tests {
		if got := cfg.TrendingURL(tt.l); got != tt.want {
			t.Errorf("TrendingURL(%s) = %q, want %q", tt.l, got, tt.want)
		}
	}
}

func TestValidateTrendingURLs(t *testing.T) {
	if err := validate(&Config{Trending: TrendingConfig{URLs: map[string]string{"fr": "https://example.com/fr.rss"}}}); err == nil {
		t.Error("expected error for unknown language key")
	}
	if err := validate(&Config{Trending: TrendingConfig{URLs: map[string]string{"bn": "ftp://example.com/bn.rss"}}}); err == nil {
		t.Error("expected error for ftp trending url")
	}
	if err := validate(&Config{Trending: TrendingConfig{URLs: map[string]string{"bn": "https://example.com/bn.rss"}}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateBadDuration(t *testing.T) {
	if err := validate(&Config{RefreshInterval: "often"}); err == nil {
		t.Error("expected error for bad refresh_interval")
	}
}

func TestLoadEnvMissingFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if err := LoadEnv(); err != nil {
		t.Errorf("LoadEnv with no .env files: %v", err)
	}
}
