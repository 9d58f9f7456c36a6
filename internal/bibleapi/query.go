package bibleapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"biblia/internal/domain"
)

// APIPrefix is the common base path of every lookup endpoint.
const APIPrefix = "/api/v1"

// Params returns the query parameters for q. Every parameter is required
// for its kind.
func Params(q domain.Query) (url.Values, error) {
	v := url.Values{}
	v.Set("book", q.Book.String())
	switch q.Kind {
	case domain.KindVerse:
		v.Set("reference", q.Reference)
	case domain.KindChapter:
		v.Set("chapter", q.Chapter)
	case domain.KindRange:
		v.Set("starting_verse", q.Start)
		v.Set("ending_verse", q.End)
	case domain.KindSearch:
		v.Set("search_term", q.Term)
	default:
		return nil, fmt.Errorf("bibleapi: unknown lookup kind %q", q.Kind)
	}
	return v, nil
}

// encode percent-encodes v. Spaces become %20 rather than '+', and ':' is
// left literal so references read as 1:1 on the wire.
func encode(v url.Values) string {
	s := v.Encode()
	s = strings.ReplaceAll(s, "+", "%20")
	return strings.ReplaceAll(s, "%3A", ":")
}

// BuildURL joins base, the API prefix, the kind's endpoint and the encoded
// parameters. base may be a bare origin or already end in /api/v1.
func BuildURL(base string, q domain.Query) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("bibleapi: base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("bibleapi: base url %q must be an absolute http(s) url", base)
	}
	params, err := Params(q)
	if err != nil {
		return "", err
	}
	p := strings.TrimRight(u.Path, "/")
	if !strings.HasSuffix(p, APIPrefix) {
		p += APIPrefix
	}
	u.Path = p + "/" + q.Kind.String()
	u.RawPath = ""
	u.RawQuery = encode(params)
	u.Fragment = ""
	return u.String(), nil
}

// BuildRequest returns the GET request for q.
func BuildRequest(ctx context.Context, base string, q domain.Query) (*http.Request, error) {
	u, err := BuildURL(base, q)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
