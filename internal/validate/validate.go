// Package validate checks user input before a lookup is dispatched.
//
// Validation is purely local: an invalid Input never reaches the network.
// Only emptiness is checked; numeric ranges, reference ordering and book
// resolution are the remote service's business.
package validate

import (
	"strings"

	"biblia/internal/domain"
)

// Input validates in for kind and returns the trimmed Query.
// The book is passed through untouched.
func Input(kind domain.Kind, in domain.Input) (domain.Query, error) {
	q := domain.Query{Kind: kind, Input: domain.Input{Book: in.Book}}
	switch kind {
	case domain.KindVerse:
		q.Reference = strings.TrimSpace(in.Reference)
		if q.Reference == "" {
			return domain.Query{}, invalid("reference", domain.MsgInvalidReference)
		}
	case domain.KindChapter:
		q.Chapter = strings.TrimSpace(in.Chapter)
		if q.Chapter == "" {
			return domain.Query{}, invalid("chapter", domain.MsgInvalidChapter)
		}
	case domain.KindRange:
		q.Start = strings.TrimSpace(in.Start)
		q.End = strings.TrimSpace(in.End)
		if q.Start == "" {
			return domain.Query{}, invalid("start", domain.MsgInvalidRange)
		}
		if q.End == "" {
			return domain.Query{}, invalid("end", domain.MsgInvalidRange)
		}
	case domain.KindSearch:
		q.Term = strings.TrimSpace(in.Term)
		if q.Term == "" {
			return domain.Query{}, invalid("term", domain.MsgInvalidTerm)
		}
	default:
		return domain.Query{}, invalid("kind", domain.MsgInvalidKind)
	}
	return q, nil
}

func invalid(field string, id domain.MessageID) error {
	return &domain.ValidationError{Field: field, MessageID: id}
}
