// Package books is the closed set of books the API knows about.
//
// Identifiers are canonical lowercase strings sent on the wire; labels are
// derived for display only.
package books

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"biblia/internal/domain"
)

// Book pairs a wire identifier with its display label.
type Book struct {
	ID    domain.BookID `json:"id"`
	Label string        `json:"label"`
}

var ids = []domain.BookID{
	"genesis",
	"exodo",
	"levitico",
	"numeros",
	"deuteronomio",
	"mateo",
	"salmos",
	"jeremias",
}

// All returns the catalog in display order.
func All() []Book {
	out := make([]Book, len(ids))
	for i, id := range ids {
		out[i] = Book{ID: id, Label: Label(id)}
	}
	return out
}

// Default is the first book in the catalog.
func Default() domain.BookID { return ids[0] }

// Label returns the title-cased display label for id.
func Label(id domain.BookID) string {
	// Casers are stateful and must not be shared.
	return cases.Title(language.Spanish).String(string(id))
}

// Lookup normalises s and reports whether it names a known book.
// Display labels ("Genesis") resolve to their identifier.
func Lookup(s string) (domain.BookID, bool) {
	id := domain.NewBookID(s)
	for _, known := range ids {
		if known == id {
			return id, true
		}
	}
	return id, false
}

// IDs returns the identifiers as strings, for shell completion.
func IDs() []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
