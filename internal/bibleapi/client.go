package bibleapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"biblia/internal/domain"
)

// DefaultBaseURL is the production Bible API origin.
const DefaultBaseURL = "https://jesusrestaura.com"

// maxBody caps how much of a response is read; a full chapter is far below it.
const maxBody = 4 << 20

// Client performs lookups against the Bible API.
type Client struct {
	Base   string
	HTTP   *http.Client
	Logger *slog.Logger
}

// New returns a Client for base. A nil hc uses http.DefaultClient and a nil
// logger discards.
func New(base string, hc *http.Client, logger *slog.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{Base: base, HTTP: hc, Logger: logger}
}

var _ domain.BibleClient = (*Client)(nil)

// body holds the top-level fields of an answer undecoded. Only the field the
// current kind reads is ever decoded, so a stray field of another shape
// cannot mask the server's error text.
type body map[string]json.RawMessage

// errorText returns the server's "error" field, or "" when it is absent or
// not a string.
func (b body) errorText() string {
	var msg string
	if json.Unmarshal(b["error"], &msg) != nil {
		return ""
	}
	return msg
}

// Lookup runs q and returns its payload. Failures are *domain.TransportError
// (network, timeout, undecodable body) or *domain.ApplicationError (the API
// answered with a failure). Nothing is retried.
func (c *Client) Lookup(ctx context.Context, q domain.Query) (domain.Result, error) {
	req, err := BuildRequest(ctx, c.Base, q)
	if err != nil {
		return domain.Result{}, &domain.TransportError{Kind: q.Kind, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	log := c.Logger.With("request_id", reqID, "kind", q.Kind.String())

	t0 := time.Now()
	log.Debug("lookup start", "url", req.URL.String())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Warn("lookup transport failure", "err", err, "dur_ms", time.Since(t0).Milliseconds())
		return domain.Result{}, &domain.TransportError{Kind: q.Kind, Err: err}
	}
	defer resp.Body.Close()

	var b body
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&b); err != nil {
		log.Warn("lookup body undecodable", "status", resp.StatusCode, "err", err)
		return domain.Result{}, &domain.TransportError{Kind: q.Kind, Err: fmt.Errorf("decode %s: %w", resp.Status, err)}
	}
	log.Debug("lookup finish", "status", resp.StatusCode, "dur_ms", time.Since(t0).Milliseconds())

	if resp.StatusCode/100 != 2 {
		return domain.Result{}, appError(q.Kind, resp.StatusCode, b.errorText())
	}
	return payload(q.Kind, resp.StatusCode, b)
}

func appError(kind domain.Kind, status int, msg string) error {
	e := &domain.ApplicationError{Kind: kind, Status: status, Message: msg}
	if msg == "" {
		e.MessageID = domain.NotFoundMessage(kind)
	}
	return e
}

// payload extracts the kind-specific success field. Only range treats an
// empty payload as a failure; the other kinds trust the status.
func payload(kind domain.Kind, status int, b body) (domain.Result, error) {
	r := domain.Result{Kind: kind}
	var err error
	switch kind {
	case domain.KindVerse:
		err = decodeField(b, "verse", &r.Verse)
	case domain.KindChapter:
		err = decodeField(b, "verses", &r.Verses)
	case domain.KindRange:
		err = decodeField(b, "verses", &r.Verse)
	case domain.KindSearch:
		err = decodeField(b, "results", &r.Results)
	default:
		return domain.Result{}, fmt.Errorf("bibleapi: unknown lookup kind %q", kind)
	}
	if err != nil {
		return domain.Result{}, &domain.TransportError{Kind: kind, Err: err}
	}
	if kind == domain.KindRange && r.Verse == "" {
		return domain.Result{}, appError(kind, status, b.errorText())
	}
	return r, nil
}

// decodeField decodes b[name] into out. A missing or null field leaves out
// at its zero value.
func decodeField(b body, name string, out any) error {
	raw := b[name]
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Join(fmt.Errorf("decode %s", name), err)
	}
	return nil
}
