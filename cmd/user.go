package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/hunttech/internal/lang"
	"github.com/matheuskafuri/hunttech/internal/store"
	"github.com/matheuskafuri/hunttech/internal/user"
)

var (
	flagUserName  string
	flagUserEmail string
	flagUserPrefs []string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show, log in or log out the local reader",
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the logged-in reader",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *store.Store) error {
			return showUser(cmd.OutOrStdout(), db)
		})
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save a reader profile on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, closeLog, err := loadConfig()
		if err != nil {
			return err
		}
		defer closeLog()

		l, err := resolveLanguage(cfg)
		if err != nil {
			return err
		}
		return withStore(func(db *store.Store) error {
			u, err := loginUser(db, flagUserName, flagUserEmail, l, flagUserPrefs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lang.Welcome(u.Language, u.Name))
			return nil
		})
	},
}

var userLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved reader profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *store.Store) error {
			if err := db.DeleteUser(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		})
	},
}

func init() {
	userLoginCmd.Flags().StringVar(&flagUserName, "name", "", "full name")
	userLoginCmd.Flags().StringVar(&flagUserEmail, "email", "", "email address")
	userLoginCmd.Flags().StringSliceVar(&flagUserPrefs, "pref", nil, "tech interest, as a category label (repeatable)")
	userLoginCmd.MarkFlagRequired("name")
	userLoginCmd.MarkFlagRequired("email")

	userCmd.AddCommand(userShowCmd, userLoginCmd, userLogoutCmd)
}

func withStore(fn func(db *store.Store) error) error {
	db, err := openStore()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()
	return fn(db)
}

func showUser(w io.Writer, db *store.Store) error {
	u, err := db.LoadUser()
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintln(w, "Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Name:      %s\n", u.Name)
	fmt.Fprintf(w, "Email:     %s\n", u.Email)
	fmt.Fprintf(w, "Language:  %s (%s)\n", u.Language.Label(), u.Language)
	prefs := "none"
	if len(u.Preferences) > 0 {
		prefs = strings.Join(u.Preferences, ", ")
	}
	fmt.Fprintf(w, "Interests: %s\n", prefs)
	return nil
}

// loginUser accepts interests only from l's own category labels.
func loginUser(db *store.Store, name, email string, l lang.Language, prefs []string) (user.User, error) {
	opts := lang.PreferenceOptions(l)
	for _, p := range prefs {
		if !contains(opts, strings.TrimSpace(p)) {
			return user.User{}, fmt.Errorf("unknown interest %q (choose from: %s)", p, strings.Join(opts, ", "))
		}
	}
	u, err := user.New(name, email, l, prefs)
	if err != nil {
		return user.User{}, err
	}
	if err := db.SaveUser(u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
