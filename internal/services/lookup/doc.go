// Package lookup runs one-shot lookups against the Bible API.
//
// It fills in the default book, validates the input locally and only then
// calls the BibleClient, so invalid input never produces a request.
package lookup
