package books_test

import (
	"testing"

	"biblia/internal/books"
	"biblia/internal/domain"
)

func TestDefaultIsFirst(t *testing.T) {
	all := books.All()
	if len(all) != 8 {
		t.Fatalf("catalog size = %d, want 8", len(all))
	}
	if books.Default() != all[0].ID || books.Default() != "genesis" {
		t.Fatalf("default = %q", books.Default())
	}
}

func TestLabelsDoNotLeakIntoIDs(t *testing.T) {
	for _, b := range books.All() {
		if domain.NewBookID(string(b.ID)) != b.ID {
			t.Errorf("id %q is not canonical", b.ID)
		}
		if b.Label == string(b.ID) {
			t.Errorf("label for %q was not title-cased", b.ID)
		}
	}
	if got := books.Label("deuteronomio"); got != "Deuteronomio" {
		t.Fatalf("label = %q", got)
	}
}

func TestLookup(t *testing.T) {
	id, ok := books.Lookup("  Salmos ")
	if !ok || id != "salmos" {
		t.Fatalf("Lookup(Salmos) = %q, %v", id, ok)
	}
	if _, ok := books.Lookup("apocalipsis"); ok {
		t.Fatal("apocalipsis should not be in the closed set")
	}
}
