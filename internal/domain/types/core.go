package types

import "strings"

// BookID is the canonical lowercase identifier of a biblical book.
type BookID string

// NewBookID lowercases and trims s. Display labels never go on the wire.
func NewBookID(s string) BookID { return BookID(strings.ToLower(strings.TrimSpace(s))) }

// String returns the string form of the book identifier.
func (b BookID) String() string { return string(b) }

// Kind selects the endpoint, parameters and response shape of a lookup.
type Kind string

const (
	KindVerse   Kind = "verse"
	KindChapter Kind = "chapter"
	KindRange   Kind = "range"
	KindSearch  Kind = "search"
)

// Kinds lists every lookup kind in display order.
var Kinds = []Kind{KindVerse, KindChapter, KindRange, KindSearch}

// String returns the string form of the kind.
func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of the four lookup kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindVerse, KindChapter, KindRange, KindSearch:
		return true
	}
	return false
}
