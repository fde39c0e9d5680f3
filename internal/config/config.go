package config

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Environment variables checked for the API key, in order.
const (
	EnvAPIKey       = "HUNTTECH_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

type AIConfig struct {
	Provider   string `yaml:"provider"` // "gemini"
	APIKey     string `yaml:"api_key,omitempty"`
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url,omitempty"`
	StoryCount int    `yaml:"story_count"`
	Window     string `yaml:"window"`
	Timeout    string `yaml:"timeout"`
}

// TrendingConfig points the sidebar at RSS/Atom feeds. URL is the English
// feed; URLs adds feeds keyed by language code. A language without a feed
// gets its built-in headlines.
type TrendingConfig struct {
	URL   string            `yaml:"url"`
	URLs  map[string]string `yaml:"urls,omitempty"`
	Count int               `yaml:"count"`
}

type ExtractConfig struct {
	MaxChars int    `yaml:"max_chars"`
	Timeout  string `yaml:"timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

type Config struct {
	Language        string         `yaml:"language"`
	RefreshInterval string         `yaml:"refresh_interval"`
	AI              AIConfig       `yaml:"ai"`
	Trending        TrendingConfig `yaml:"trending"`
	Extract         ExtractConfig  `yaml:"extract"`
	Log             LogConfig      `yaml:"log"`
}

// DefaultLanguage returns the configured feed language, or lang.Default.
func (c *Config) DefaultLanguage() lang.Language {
	return lang.Language(strings.ToLower(c.Language)).Or(lang.Default)
}

// AIKey returns the resolved API key (config, then env vars).
func (c *Config) AIKey() string {
	if c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	if k := os.Getenv(EnvAPIKey); k != "" {
		return k
	}
	return os.Getenv(EnvGeminiAPIKey)
}

// AIEnabled returns true if an API key is available.
func (c *Config) AIEnabled() bool {
	return c.AIKey() != ""
}

func (c *Config) RefreshDuration() time.Duration {
	return parseDuration(c.RefreshInterval, 10*time.Minute)
}

// StoryCount is how many stories a single fetch asks for.
func (c *Config) StoryCount() int {
	if c.AI.StoryCount <= 0 {
		return 50
	}
	return c.AI.StoryCount
}

// WindowDuration is how far back upstream should look for stories.
func (c *Config) WindowDuration() time.Duration {
	return parseDuration(c.AI.Window, 48*time.Hour)
}

func (c *Config) AITimeout() time.Duration {
	return parseDuration(c.AI.Timeout, 90*time.Second)
}

// TrendingURL returns the trending feed for l, or "" when l has none.
func (c *Config) TrendingURL(l lang.Language) string {
	if u := c.Trending.URLs[l.String()]; u != "" {
		return u
	}
	if l == lang.English {
		return c.Trending.URL
	}
	return ""
}

func (c *Config) TrendingCount() int {
	if c.Trending.Count <= 0 {
		return 3
	}
	return c.Trending.Count
}

func (c *Config) ExtractMaxChars() int {
	if c.Extract.MaxChars <= 0 {
		return 4000
	}
	return c.Extract.MaxChars
}

func (c *Config) ExtractTimeout() time.Duration {
	return parseDuration(c.Extract.Timeout, 15*time.Second)
}

// LogPath returns the log file, defaulting to the XDG state dir.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, "hunttech", "hunttech.log")
}

// parseDuration accepts Go durations plus an "Nd" day form.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ParseDuration parses "7d" style day durations as well as anything
// time.ParseDuration understands.
func ParseDuration(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "hunttech", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.DataHome, "hunttech", "hunttech.db")
}

// LoadEnv reads .env files from the working directory and the config
// directory. Missing files are ignored; variables already set win.
func LoadEnv() error {
	for _, p := range []string{".env", filepath.Join(xdg.ConfigHome, "hunttech", ".env")} {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default path) on top of the
// embedded defaults. A missing file is created from the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Language != "" {
		if _, err := lang.Parse(cfg.Language); err != nil {
			return fmt.Errorf("language: %w", err)
		}
	}
	switch cfg.AI.Provider {
	case "", "gemini":
	default:
		return fmt.Errorf("unknown AI provider %q (valid: gemini)", cfg.AI.Provider)
	}
	if err := validateURL("ai.base_url", cfg.AI.BaseURL); err != nil {
		return err
	}
	if err := validateURL("trending.url", cfg.Trending.URL); err != nil {
		return err
	}
	for code, u := range cfg.Trending.URLs {
		if _, err := lang.Parse(code); err != nil {
			return fmt.Errorf("trending.urls: %w", err)
		}
		if err := validateURL("trending.urls."+code, u); err != nil {
			return err
		}
	}
	durations := map[string]string{
		"refresh_interval": cfg.RefreshInterval,
		"ai.window":        cfg.AI.Window,
		"ai.timeout":       cfg.AI.Timeout,
		"extract.timeout":  cfg.Extract.Timeout,
	}
	for key, v := range durations {
		if v == "" {
			continue
		}
		if _, err := ParseDuration(v); err != nil {
			return fmt.Errorf("%s: invalid duration %q", key, v)
		}
	}
	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: url scheme must be http or https, got %q", key, u.Scheme)
	}
	return nil
}
