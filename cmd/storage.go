package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/hunttech/internal/config"
	"github.com/matheuskafuri/hunttech/internal/store"
)

var (
	flagPruneOlderThan string
	flagStatsRecent    int
)

const defaultHistoryRetention = 30 * 24 * time.Hour

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old entries from the fetch history",
	Long: `Delete fetch history older than the retention period and reclaim disk space.

Uses 30d unless overridden with --older-than. The saved user and theme are
never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		retention := defaultHistoryRetention
		if flagPruneOlderThan != "" {
			d, err := config.ParseDuration(flagPruneOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			retention = d
		}

		return withStore(func(db *store.Store) error {
			deleted, err := db.PruneFetches(retention)
			if err != nil {
				return fmt.Errorf("pruning: %w", err)
			}
			if deleted == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to prune.")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d fetch(es) older than %s.\n", deleted, formatDuration(retention))
			}
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show local store statistics and recent fetches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *store.Store) error {
			return printStats(cmd.OutOrStdout(), db, flagStatsRecent)
		})
	},
}

func init() {
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "", "override retention period (e.g., 7d, 72h)")
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 5, "number of recent fetches to list")
}

func printStats(w io.Writer, db *store.Store, recent int) error {
	st, err := db.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	last := "never"
	if !st.LastRefresh.IsZero() {
		last = st.LastRefresh.Local().Format("2006-01-02 15:04")
	}
	fmt.Fprintf(w, "Store: %s\n", db.Path())
	fmt.Fprintf(w, "Keys: %d\n", st.Keys)
	fmt.Fprintf(w, "Fetches: %d (%d failed)\n", st.Fetches, st.Failed)
	fmt.Fprintf(w, "Last refresh: %s\n", last)
	fmt.Fprintf(w, "Size: %s\n", formatBytes(st.SizeBytes))

	if recent <= 0 || st.Fetches == 0 {
		return nil
	}
	rows, err := db.RecentFetches(recent)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nRecent fetches:")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s  %-2s  %-6s  %3d  %s\n",
			r.FetchedAt.Local().Format("Jan 2 15:04"), r.Language, r.Status, r.Items, r.Category)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
