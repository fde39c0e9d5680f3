package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/hunttech/internal/store"
	"github.com/matheuskafuri/hunttech/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the saved color theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{theme.Dark, theme.Light},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *store.Store) error {
			if len(args) == 0 {
				return showTheme(cmd.OutOrStdout(), db)
			}
			if err := db.SetTheme(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", args[0])
			return nil
		})
	},
}

func showTheme(w io.Writer, db *store.Store) error {
	v, err := db.Theme()
	if err != nil {
		return err
	}
	if v == "" {
		fmt.Fprintln(w, "No theme saved; following the terminal background.")
		return nil
	}
	fmt.Fprintln(w, v)
	return nil
}
