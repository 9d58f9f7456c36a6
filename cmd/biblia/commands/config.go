package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"biblia/internal/app"
	"biblia/internal/books"
	"biblia/internal/domain"
	"biblia/internal/i18n"
	"biblia/internal/store"
)

// prefsHome resolves the config dir without building the full graph, so a
// broken preferences file can still be repaired.
func prefsHome() (string, error) {
	if home != "" {
		return home, nil
	}
	if h := os.Getenv(app.EnvHome); h != "" {
		return h, nil
	}
	return app.DefaultHome()
}

func configCmd() *cobra.Command {
	var prefs *store.PrefsFileStore

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change stored defaults",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			h, err := prefsHome()
			if err != nil {
				return err
			}
			prefs = store.NewPrefsFileStore(h)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print stored defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prefs.LoadPreferences()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file: %s\n", prefs.Path())
			fmt.Fprintf(out, "api:  %s\n", p.APIURL)
			fmt.Fprintf(out, "book: %s\n", p.Book)
			fmt.Fprintf(out, "lang: %s\n", p.Lang)
			return nil
		},
	}

	set := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Store a default (keys: api, book, lang)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"api", "book", "lang"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prefs.LoadPreferences()
			if err != nil {
				// unreadable file: start over
				p = domain.Preferences{}
			}
			if err := applyPref(&p, args[0], strings.TrimSpace(args[1])); err != nil {
				return err
			}
			if err := prefs.SavePreferences(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

func applyPref(p *domain.Preferences, key, value string) error {
	switch key {
	case "api":
		if err := app.CheckAPIURL(value); err != nil {
			return err
		}
		p.APIURL = value
	case "book":
		id, ok := books.Lookup(value)
		if !ok {
			return fmt.Errorf("unknown book %q (see `biblia books`)", value)
		}
		p.Book = id
	case "lang":
		p.Lang = i18n.Match(value).String()
	default:
		return fmt.Errorf("unknown key %q: want api, book or lang", key)
	}
	return nil
}
