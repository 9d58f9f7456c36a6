package bibleapi_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"biblia/internal/bibleapi"
	"biblia/internal/bibleapi/apitest"
	"biblia/internal/domain"
)

func lookup(t *testing.T, srv *apitest.Server, q domain.Query) (domain.Result, error) {
	t.Helper()
	c := bibleapi.New(srv.URL, srv.Client(), nil)
	return c.Lookup(context.Background(), q)
}

func verseQ(book, ref string) domain.Query {
	return domain.Query{Kind: domain.KindVerse, Input: domain.Input{Book: domain.BookID(book), Reference: ref}}
}

func TestLookup_Verse_OK(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("verse", 200, `{"verse":"En el principio..."}`)

	r, err := lookup(t, srv, verseQ("genesis", "1:1"))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if r.Kind != domain.KindVerse || r.Verse != "En el principio..." {
		t.Fatalf("result = %+v", r)
	}
	reqs := srv.Requests()
	if len(reqs) != 1 || reqs[0] != "/api/v1/verse?book=genesis&reference=1:1" {
		t.Fatalf("requests = %v", reqs)
	}
}

func TestLookup_Chapter_OK(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("chapter", 200, `{"verses":["El Señor es mi pastor...","..."]}`)

	r, err := lookup(t, srv, domain.Query{Kind: domain.KindChapter, Input: domain.Input{Book: "salmos", Chapter: "23"}})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := []string{"El Señor es mi pastor...", "..."}
	if !reflect.DeepEqual(r.Verses, want) {
		t.Fatalf("verses = %q", r.Verses)
	}
}

func TestLookup_Range_OK(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("range", 200, `{"verses":"16 Porque de tal manera... 17 Porque no envió Dios..."}`)

	r, err := lookup(t, srv, domain.Query{Kind: domain.KindRange, Input: domain.Input{Book: "juan", Start: "3:16", End: "3:17"}})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !strings.HasPrefix(r.Verse, "16 Porque") {
		t.Fatalf("verse = %q", r.Verse)
	}
}

func TestLookup_Search_OK(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("search", 200, `{"results":["Mateo 8:10 ...fe...","Mateo 9:22 ...fe..."]}`)

	r, err := lookup(t, srv, domain.Query{Kind: domain.KindSearch, Input: domain.Input{Book: "mateo", Term: "fe"}})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(r.Results) != 2 {
		t.Fatalf("results = %q", r.Results)
	}
}

func queries() []domain.Query {
	return []domain.Query{
		verseQ("genesis", "1:1"),
		{Kind: domain.KindChapter, Input: domain.Input{Book: "salmos", Chapter: "23"}},
		{Kind: domain.KindRange, Input: domain.Input{Book: "mateo", Start: "5:3", End: "5:12"}},
		{Kind: domain.KindSearch, Input: domain.Input{Book: "mateo", Term: "fe"}},
	}
}

func TestLookup_ServerErrorMessage(t *testing.T) {
	for _, q := range queries() {
		t.Run(q.Kind.String(), func(t *testing.T) {
			srv := apitest.New(t)
			srv.Set(q.Kind.String(), 404, `{"error":"X"}`)

			_, err := lookup(t, srv, q)
			var aerr *domain.ApplicationError
			if !errors.As(err, &aerr) {
				t.Fatalf("expected *ApplicationError, got %T (%v)", err, err)
			}
			if aerr.Message != "X" || aerr.Status != 404 || aerr.Kind != q.Kind {
				t.Fatalf("app error = %+v", aerr)
			}
		})
	}
}

func TestLookup_DefaultMessage(t *testing.T) {
	want := map[domain.Kind]domain.MessageID{
		domain.KindVerse:   domain.MsgVerseNotFound,
		domain.KindChapter: domain.MsgChapterNotFound,
		domain.KindRange:   domain.MsgRangeNotFound,
		domain.KindSearch:  domain.MsgNoResults,
	}
	for _, q := range queries() {
		t.Run(q.Kind.String(), func(t *testing.T) {
			srv := apitest.New(t)
			srv.Set(q.Kind.String(), 500, `{}`)

			_, err := lookup(t, srv, q)
			var aerr *domain.ApplicationError
			if !errors.As(err, &aerr) {
				t.Fatalf("expected *ApplicationError, got %v", err)
			}
			if aerr.Message != "" || aerr.MessageID != want[q.Kind] {
				t.Fatalf("app error = %+v", aerr)
			}
			if !errors.Is(err, domain.ErrApplication) {
				t.Fatal("should unwrap to ErrApplication")
			}
		})
	}
}

func TestLookup_FailureIgnoresMistypedFields(t *testing.T) {
	tests := []struct {
		name string
		q    domain.Query
		body string
		want string
	}{
		{"search results not a list", queries()[3], `{"error":"Sin coincidencias","results":"none"}`, "Sin coincidencias"},
		{"verse not a string", queries()[0], `{"error":"Verso X","verse":{"n":1}}`, "Verso X"},
		{"chapter with stray fields", queries()[1], `{"error":"Capítulo X","verses":7,"results":false}`, "Capítulo X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := apitest.New(t)
			srv.Set(tt.q.Kind.String(), 404, tt.body)

			_, err := lookup(t, srv, tt.q)
			var aerr *domain.ApplicationError
			if !errors.As(err, &aerr) {
				t.Fatalf("expected *ApplicationError, got %T (%v)", err, err)
			}
			if aerr.Message != tt.want {
				t.Fatalf("message = %q, want %q", aerr.Message, tt.want)
			}
		})
	}
}

func TestLookup_NonStringErrorUsesDefault(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("search", 404, `{"error":{"code":7}}`)

	_, err := lookup(t, srv, queries()[3])
	var aerr *domain.ApplicationError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *ApplicationError, got %v", err)
	}
	if aerr.Message != "" || aerr.MessageID != domain.MsgNoResults {
		t.Fatalf("app error = %+v", aerr)
	}
}

func TestLookup_SuccessIgnoresOtherKindsFields(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("verse", 200, `{"verse":"Jesús lloró.","results":"none","verses":3}`)

	res, err := lookup(t, srv, queries()[0])
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Verse != "Jesús lloró." {
		t.Fatalf("verse = %q", res.Verse)
	}
}

func TestLookup_RangeEmptyPayloadFails(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("range", 200, `{"verses":""}`)

	_, err := lookup(t, srv, queries()[2])
	var aerr *domain.ApplicationError
	if !errors.As(err, &aerr) || aerr.MessageID != domain.MsgRangeNotFound {
		t.Fatalf("expected range_not_found, got %v", err)
	}
}

func TestLookup_OtherKindsTrustSuccess(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("chapter", 200, `{}`)
	srv.Set("search", 200, `{}`)
	srv.Set("verse", 200, `{}`)

	for _, q := range []domain.Query{queries()[0], queries()[1], queries()[3]} {
		if _, err := lookup(t, srv, q); err != nil {
			t.Fatalf("%s: unexpected error %v", q.Kind, err)
		}
	}
}

func TestLookup_TransportFailures(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		srv := apitest.New(t)
		base := srv.URL
		srv.Close()
		c := bibleapi.New(base, nil, nil)
		for _, q := range queries() {
			_, err := c.Lookup(context.Background(), q)
			if !errors.Is(err, domain.ErrTransport) {
				t.Fatalf("%s: expected ErrTransport, got %v", q.Kind, err)
			}
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := apitest.New(t)
		srv.Set("verse", 502, `<html>bad gateway</html>`)
		_, err := lookup(t, srv, queries()[0])
		var terr *domain.TransportError
		if !errors.As(err, &terr) {
			t.Fatalf("expected *TransportError, got %v", err)
		}
	})

	t.Run("range payload of wrong type", func(t *testing.T) {
		srv := apitest.New(t)
		srv.Set("range", 200, `{"verses":["a","b"]}`)
		_, err := lookup(t, srv, queries()[2])
		if !errors.Is(err, domain.ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		srv := apitest.New(t)
		srv.Set("verse", 200, `{"verse":"late"}`)
		srv.Block()
		c := bibleapi.New(srv.URL, &http.Client{Timeout: 50 * time.Millisecond}, nil)
		_, err := c.Lookup(context.Background(), queries()[0])
		if !errors.Is(err, domain.ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
	})
}

func TestLookup_Idempotent(t *testing.T) {
	srv := apitest.New(t)
	srv.Set("chapter", 200, `{"verses":["a","b","c"]}`)
	q := queries()[1]

	first, err1 := lookup(t, srv, q)
	second, err2 := lookup(t, srv, q)
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if srv.Count() != 2 {
		t.Fatalf("expected two requests, got %d", srv.Count())
	}
}
