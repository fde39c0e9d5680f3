package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/hunttech/internal/extract"
	"github.com/matheuskafuri/hunttech/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := loadConfig()
	if err != nil {
		return err
	}
	defer closeLog()

	db, err := openStore()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	ctrl, err := newController(cfg, db)
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOpts{
		Controller: ctrl,
		Extractor: extract.New(
			extract.WithTimeout(cfg.ExtractTimeout()),
			extract.WithMaxChars(cfg.ExtractMaxChars()),
		),
		TrendingURL:   cfg.TrendingURL,
		TrendingCount: cfg.TrendingCount(),
		RefreshEvery:  cfg.RefreshDuration(),
		Version:       version,
	})
}
