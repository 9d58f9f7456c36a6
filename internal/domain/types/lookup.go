package types

// Input is the raw user input for a lookup. Only the fields used by the
// active kind are read.
type Input struct {
	Book      BookID
	Reference string // verse: "chapter:verse"
	Chapter   string // chapter: positive integer as typed
	Start     string // range: first reference
	End       string // range: last reference
	Term      string // search: free text
}

// Query is a validated, trimmed Input tagged with its kind.
type Query struct {
	Kind Kind
	Input
}

// Result is the payload of a successful lookup. Exactly one payload field
// is populated, depending on Kind.
type Result struct {
	Kind    Kind     `json:"kind"`
	Verse   string   `json:"verse,omitempty"`   // verse, and range (a single string)
	Verses  []string `json:"verses,omitempty"`  // chapter
	Results []string `json:"results,omitempty"` // search
}

// Lines returns the payload as display lines regardless of kind.
func (r Result) Lines() []string {
	switch r.Kind {
	case KindChapter:
		return r.Verses
	case KindSearch:
		return r.Results
	}
	if r.Verse == "" {
		return nil
	}
	return []string{r.Verse}
}
