package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"biblia/internal/books"
	"biblia/internal/digest"
	"biblia/internal/domain"
	"biblia/internal/screen"
)

type lookupDef struct {
	kind  domain.Kind
	use   string
	short string
	args  cobra.PositionalArgs
	input func(args []string) domain.Input
}

var lookups = []lookupDef{
	{
		kind:  domain.KindVerse,
		use:   "verse <reference>",
		short: "Fetch a single verse, e.g. 3:16",
		args:  cobra.ExactArgs(1),
		input: func(a []string) domain.Input { return domain.Input{Reference: a[0]} },
	},
	{
		kind:  domain.KindChapter,
		use:   "chapter <number>",
		short: "Fetch a full chapter",
		args:  cobra.ExactArgs(1),
		input: func(a []string) domain.Input { return domain.Input{Chapter: a[0]} },
	},
	{
		kind:  domain.KindRange,
		use:   "range <start> <end>",
		short: "Fetch the verses from start to end, e.g. 3:16 3:19",
		args:  cobra.ExactArgs(2),
		input: func(a []string) domain.Input { return domain.Input{Start: a[0], End: a[1]} },
	},
	{
		kind:  domain.KindSearch,
		use:   "search <term...>",
		short: "Search a book for a word or phrase",
		args:  cobra.MinimumNArgs(1),
		input: func(a []string) domain.Input { return domain.Input{Term: strings.Join(a, " ")} },
	},
}

// legacyAliases returns the legacy screen names served by kind.
func legacyAliases(kind domain.Kind) []string {
	var out []string
	for _, e := range screen.Table {
		if e.Legacy && e.Kind == kind {
			out = append(out, e.Name)
		}
	}
	return out
}

func lookupCmd(def lookupDef) *cobra.Command {
	var (
		book        string
		fingerprint bool
	)
	cmd := &cobra.Command{
		Use:     def.use,
		Short:   def.short,
		Aliases: legacyAliases(def.kind),
		Args:    def.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := def.input(args)
			if book != "" {
				id, ok := books.Lookup(book)
				if !ok {
					return describe(&domain.ValidationError{Field: "book", MessageID: domain.MsgUnknownBook})
				}
				in.Book = id
			} else {
				in.Book = wire.Config.Book
			}

			res, err := wire.Lookups.Lookup(cmd.Context(), def.kind, in)
			if err != nil {
				return describe(err)
			}
			fp := ""
			if fingerprint {
				fp = digest.Fingerprint(res)
			}
			if asJSON {
				return renderJSON(cmd.OutOrStdout(), res, in, fp)
			}
			renderText(cmd.OutOrStdout(), res, in)
			if fp != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&book, "book", "b", "", "book id (default from config, else genesis)")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "print a short fingerprint of the result")
	_ = cmd.RegisterFlagCompletionFunc("book", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return books.IDs(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
