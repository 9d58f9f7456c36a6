package lookup

import (
	"context"

	"biblia/internal/domain"
	"biblia/internal/validate"
)

// Service validates input and forwards valid queries to the API client.
type Service struct {
	client      domain.BibleClient
	defaultBook domain.BookID
}

// New returns a Service that fills in defaultBook when Input.Book is empty.
func New(client domain.BibleClient, defaultBook domain.BookID) *Service {
	return &Service{client: client, defaultBook: defaultBook}
}

// Lookup validates in for kind and, only if it is valid, performs the lookup.
func (s *Service) Lookup(ctx context.Context, kind domain.Kind, in domain.Input) (domain.Result, error) {
	if in.Book == "" {
		in.Book = s.defaultBook
	}
	q, err := validate.Input(kind, in)
	if err != nil {
		return domain.Result{}, err
	}
	return s.client.Lookup(ctx, q)
}
