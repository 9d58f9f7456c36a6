package screen

import (
	"fmt"
	"sync"

	"biblia/internal/domain"
)

// Entry names a screen.
type Entry struct {
	Name   string
	Kind   domain.Kind
	Legacy bool // kept for the bible/* and index routes
}

// Table is the flat table of named screens. Which of the two historical
// home layouts is authoritative is undecided, so both sets of names resolve.
var Table = []Entry{
	{Name: "verse", Kind: domain.KindVerse},
	{Name: "chapter", Kind: domain.KindChapter},
	{Name: "range", Kind: domain.KindRange},
	{Name: "search", Kind: domain.KindSearch},
	{Name: "index", Kind: domain.KindVerse, Legacy: true},
	{Name: "bible/verse", Kind: domain.KindVerse, Legacy: true},
	{Name: "bible/chapter", Kind: domain.KindChapter, Legacy: true},
	{Name: "bible/range", Kind: domain.KindRange, Legacy: true},
	{Name: "bible/search", Kind: domain.KindSearch, Legacy: true},
}

// Lookup returns the kind served by the named screen.
func Lookup(name string) (domain.Kind, bool) {
	for _, e := range Table {
		if e.Name == name {
			return e.Kind, true
		}
	}
	return "", false
}

// Set owns one Screen per name, created on first use.
type Set struct {
	client domain.BibleClient
	opts   Options

	mu      sync.Mutex
	screens map[string]*Screen
}

// NewSet returns an empty Set whose screens share client and opts.
func NewSet(client domain.BibleClient, opts Options) *Set {
	return &Set{client: client, opts: opts, screens: make(map[string]*Screen)}
}

// Get returns the screen for name, creating it if needed.
func (s *Set) Get(name string) (*Screen, error) {
	kind, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown screen %q", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sc, ok := s.screens[name]; ok {
		return sc, nil
	}
	sc := New(kind, s.client, s.opts)
	s.screens[name] = sc
	return sc, nil
}

// Close dismisses every screen.
func (s *Set) Close() {
	s.mu.Lock()
	screens := s.screens
	s.screens = make(map[string]*Screen)
	s.mu.Unlock()
	for _, sc := range screens {
		sc.Close()
	}
}
