package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"biblia/internal/books"
	"biblia/internal/domain"
)

// heading is the card title: book label plus what was asked for.
func heading(r domain.Result, in domain.Input) string {
	label := books.Label(in.Book)
	switch r.Kind {
	case domain.KindVerse:
		return label + " " + in.Reference
	case domain.KindChapter:
		return label + " " + in.Chapter
	case domain.KindRange:
		return label + " " + in.Start + " - " + in.End
	case domain.KindSearch:
		return label + ": " + in.Term
	}
	return label
}

// renderText prints a verse card, or a numbered list for chapters and
// search results.
func renderText(w io.Writer, r domain.Result, in domain.Input) {
	fmt.Fprintln(w, heading(r, in))
	switch r.Kind {
	case domain.KindChapter, domain.KindSearch:
		for i, line := range r.Lines() {
			fmt.Fprintf(w, "%d. %s\n", i+1, line)
		}
	default:
		fmt.Fprintln(w, r.Verse)
	}
}

type jsonResult struct {
	Book        domain.BookID `json:"book"`
	Title       string        `json:"title"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	domain.Result
}

func renderJSON(w io.Writer, r domain.Result, in domain.Input, fp string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{Book: in.Book, Title: heading(r, in), Fingerprint: fp, Result: r})
}
