package validate_test

import (
	"errors"
	"testing"

	"biblia/internal/domain"
	"biblia/internal/validate"
)

func TestInput_EmptyFieldsRejected(t *testing.T) {
	cases := []struct {
		kind  domain.Kind
		in    domain.Input
		field string
		msg   domain.MessageID
	}{
		{domain.KindVerse, domain.Input{Reference: "   "}, "reference", domain.MsgInvalidReference},
		{domain.KindChapter, domain.Input{Chapter: ""}, "chapter", domain.MsgInvalidChapter},
		{domain.KindRange, domain.Input{Start: "", End: "3:19"}, "start", domain.MsgInvalidRange},
		{domain.KindRange, domain.Input{Start: "3:16", End: "\t"}, "end", domain.MsgInvalidRange},
		{domain.KindSearch, domain.Input{Term: " \n "}, "term", domain.MsgInvalidTerm},
		{domain.Kind("psalter"), domain.Input{Term: "fe"}, "kind", domain.MsgInvalidKind},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind)+"/"+tc.field, func(t *testing.T) {
			_, err := validate.Input(tc.kind, tc.in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field || verr.MessageID != tc.msg {
				t.Fatalf("got field=%s msg=%s", verr.Field, verr.MessageID)
			}
		})
	}
}

func TestInput_TrimsAndKeepsBook(t *testing.T) {
	q, err := validate.Input(domain.KindRange, domain.Input{Book: "mateo", Start: " 5:3 ", End: "5:12 ", Term: "ignored"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if q.Kind != domain.KindRange || q.Book != "mateo" {
		t.Fatalf("kind/book = %s/%s", q.Kind, q.Book)
	}
	if q.Start != "5:3" || q.End != "5:12" {
		t.Fatalf("range = %q..%q", q.Start, q.End)
	}
	if q.Term != "" {
		t.Fatalf("unrelated field leaked: %q", q.Term)
	}
}

func TestInput_NoNumericChecks(t *testing.T) {
	// Ordering and existence belong to the server.
	if _, err := validate.Input(domain.KindRange, domain.Input{Start: "9:9", End: "1:1"}); err != nil {
		t.Fatalf("reversed range rejected locally: %v", err)
	}
	if _, err := validate.Input(domain.KindChapter, domain.Input{Chapter: "abc"}); err != nil {
		t.Fatalf("non-numeric chapter rejected locally: %v", err)
	}
}
