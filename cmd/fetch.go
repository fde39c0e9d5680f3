package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/hunttech/internal/news"
)

var (
	flagFetchJSON  bool
	flagFetchPrefs []string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one batch of news and print it",
	Long: `Run the news pipeline once and print the stories.

An empty or failed fetch still exits 0; the outcome is reported on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		defer ctrl.Close()

		t := ctrl.Begin("")
		if len(flagFetchPrefs) > 0 {
			t.Query.Preferences = flagFetchPrefs
		}
		res := ctrl.Fetch(t)
		ctrl.Complete(t, res)

		reportStatus(cmd.ErrOrStderr(), t.Query, res)
		if flagFetchJSON {
			return writeJSON(cmd.OutOrStdout(), res.Items)
		}
		printItems(cmd.OutOrStdout(), res.Items)
		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&flagFetchJSON, "json", false, "print items as JSON")
	fetchCmd.Flags().StringSliceVar(&flagFetchPrefs, "pref", nil, "interest to prioritize (repeatable, overrides the stored user's)")
}

func reportStatus(w io.Writer, q news.Query, res news.Result) {
	fmt.Fprintf(w, "%s · %s · %d stories · %s\n", q.Language, q.Category, len(res.Items), res.Status)
	if res.Err != nil {
		fmt.Fprintf(w, "  [warn] %v\n", res.Err)
	}
}

func writeJSON(w io.Writer, items []news.Item) error {
	if items == nil {
		items = []news.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(items)
}

func printItems(w io.Writer, items []news.Item) {
	for i, it := range items {
		fmt.Fprintf(w, "%2d. %s\n", i+1, it.Title)
		meta := it.Category + " · " + it.Source
		if ts, err := time.Parse(time.RFC3339, it.Timestamp); err == nil {
			meta += " · " + ts.Local().Format("Jan 2 15:04")
		} else if it.Timestamp != "" {
			meta += " · " + it.Timestamp
		}
		fmt.Fprintf(w, "    %s\n", meta)
		if it.Description != "" {
			fmt.Fprintf(w, "    %s\n", it.Description)
		}
		if it.URL != "" {
			fmt.Fprintf(w, "    %s\n", it.URL)
		}
		fmt.Fprintln(w)
	}
}
