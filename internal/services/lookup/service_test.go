package lookup_test

import (
	"context"
	"testing"

	"biblia/internal/domain"
	"biblia/internal/services/lookup"
)

type recordingClient struct {
	got []domain.Query
}

func (c *recordingClient) Lookup(_ context.Context, q domain.Query) (domain.Result, error) {
	c.got = append(c.got, q)
	return domain.Result{Kind: q.Kind, Verse: "ok"}, nil
}

func TestLookup_DefaultBookAndTrim(t *testing.T) {
	rc := &recordingClient{}
	svc := lookup.New(rc, "genesis")

	if _, err := svc.Lookup(context.Background(), domain.KindVerse, domain.Input{Reference: " 1:1 "}); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(rc.got) != 1 || rc.got[0].Book != "genesis" || rc.got[0].Reference != "1:1" {
		t.Fatalf("client saw %+v", rc.got)
	}

	if _, err := svc.Lookup(context.Background(), domain.KindVerse, domain.Input{Book: "mateo", Reference: "5:3"}); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rc.got[1].Book != "mateo" {
		t.Fatalf("explicit book overridden: %s", rc.got[1].Book)
	}
}

func TestLookup_InvalidSkipsClient(t *testing.T) {
	rc := &recordingClient{}
	svc := lookup.New(rc, "genesis")
	for _, k := range domain.Kinds {
		if _, err := svc.Lookup(context.Background(), k, domain.Input{}); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", k, err)
		}
	}
	if len(rc.got) != 0 {
		t.Fatalf("client called %d times", len(rc.got))
	}
}
