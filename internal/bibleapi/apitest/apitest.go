// Package apitest runs an in-process fake of the Bible API for tests.
//
// Answers are canned per lookup kind with Set; every request is recorded so
// tests can assert what went over the wire, or that nothing did. Block holds
// requests until released, for exercising in-flight behaviour.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/julienschmidt/httprouter"
)

// Response is a canned answer.
type Response struct {
	Status int
	Body   string
}

// Server is a fake Bible API.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []string
	gate      chan struct{}
	release   func()
}

// New starts a Server and closes it when t finishes. Kinds without a canned
// answer get 404 with an empty JSON object.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{responses: make(map[string]Response)}

	router := httprouter.New()
	router.GET("/api/v1/:kind", s.handle)
	s.Server = httptest.NewServer(router)

	t.Cleanup(func() {
		s.Unblock()
		s.Server.Close()
	})
	return s
}

// Set cans the answer for kind ("verse", "chapter", "range", "search").
func (s *Server) Set(kind string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[kind] = Response{Status: status, Body: body}
}

// Requests returns the request URIs received so far, in arrival order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Count returns how many requests arrived.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Block makes subsequent requests wait until Unblock is called or the
// client goes away.
func (s *Server) Block() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate != nil {
		return
	}
	gate := make(chan struct{})
	var once sync.Once
	s.gate = gate
	s.release = func() { once.Do(func() { close(gate) }) }
}

// Unblock releases every waiting request.
func (s *Server) Unblock() {
	s.mu.Lock()
	release := s.release
	s.gate, s.release = nil, nil
	s.mu.Unlock()
	if release != nil {
		release()
	}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	kind := ps.ByName("kind")

	s.mu.Lock()
	s.requests = append(s.requests, r.URL.RequestURI())
	resp, ok := s.responses[kind]
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}
	if !ok {
		resp = Response{Status: http.StatusNotFound, Body: "{}"}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}
