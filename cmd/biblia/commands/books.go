package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"biblia/internal/books"
)

func booksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the books the API can be asked about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := books.All()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}
			for _, b := range all {
				marker := " "
				if b.ID == wire.Config.Book {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-14s %s\n", marker, b.ID, b.Label)
			}
			return nil
		},
	}
}
