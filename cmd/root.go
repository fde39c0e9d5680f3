package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matheuskafuri/hunttech/internal/ai"
	"github.com/matheuskafuri/hunttech/internal/config"
	"github.com/matheuskafuri/hunttech/internal/lang"
	"github.com/matheuskafuri/hunttech/internal/news"
	"github.com/matheuskafuri/hunttech/internal/reader"
	"github.com/matheuskafuri/hunttech/internal/store"
	"github.com/matheuskafuri/hunttech/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagLang     string
	flagCategory string
	flagConfig   string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "hunttech",
	Short: "AI tech news reader in Bangla, English and Hindi",
	Long: `hunttech shows trending technology news written for you in Bangla,
English or Hindi. Stories are generated fresh on every fetch and refreshed
every ten minutes while the reader is open.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "feed language (bn, en or hi) when no user is logged in")
	rootCmd.PersistentFlags().StringVar(&flagCategory, "category", "", "start in this category (label in the feed language)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hunttech %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// openStore is swapped out in tests.
var openStore = func() (*store.Store, error) {
	return store.Open(config.StorePath())
}

// loadConfig reads .env files and the YAML config, then points logrus at
// the configured log file.
func loadConfig() (*config.Config, func(), error) {
	if err := config.LoadEnv(); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	closeLog, err := setupLogging(cfg, flagDebug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closeLog, nil
}

// setupLogging sends logrus output to the log file so the TUI screen stays
// clean.
func setupLogging(cfg *config.Config, debug bool) (func(), error) {
	level := logrus.InfoLevel
	if cfg.Log.Level != "" {
		l, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
		level = l
	}
	if debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logrus.SetOutput(f)
	return func() { f.Close() }, nil
}

// resolveLanguage picks --lang, then the config's language.
func resolveLanguage(cfg *config.Config) (lang.Language, error) {
	if flagLang == "" {
		return cfg.DefaultLanguage(), nil
	}
	return lang.Parse(flagLang)
}

// newGenerator returns the configured upstream client. Without an API key
// every fetch fails soft with ai.ErrNotConfigured.
func newGenerator(cfg *config.Config) (ai.Generator, error) {
	if !cfg.AIEnabled() {
		logrus.WithField("component", "ai").Warn("no API key set, fetches will fail")
		return ai.Disabled{}, nil
	}
	gen, err := ai.New(&cfg.AI, cfg.AIKey(), cfg.AITimeout())
	if err != nil {
		return nil, fmt.Errorf("setting up AI: %w", err)
	}
	return gen, nil
}

// newController wires the upstream client, fetch pipeline and store into a
// reader controller.
func newController(cfg *config.Config, db *store.Store) (*reader.Controller, error) {
	gen, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}
	l, err := resolveLanguage(cfg)
	if err != nil {
		return nil, err
	}

	fetcher := news.NewFetcher(gen,
		news.WithStoryCount(cfg.StoryCount()),
		news.WithWindow(cfg.WindowDuration()),
	)
	return reader.New(fetcher, db,
		reader.WithLanguage(l),
		reader.WithCategory(flagCategory),
		reader.WithSystemDark(theme.SystemDark()),
	), nil
}
