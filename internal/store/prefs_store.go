package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"biblia/internal/domain"
)

const prefsFilename = "config.json"

// PrefsFileStore persists the user's defaults to disk.
type PrefsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPrefsFileStore returns a PrefsFileStore rooted at dir.
func NewPrefsFileStore(dir string) *PrefsFileStore {
	return &PrefsFileStore{dir: dir}
}

// Path returns the file the preferences live in.
func (s *PrefsFileStore) Path() string { return filepath.Join(s.dir, prefsFilename) }

// LoadPreferences reads the stored defaults. A missing file yields the zero value.
func (s *PrefsFileStore) LoadPreferences() (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.Preferences
	if err := readJSON(s.Path(), &p); err != nil {
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return p, nil
}

// SavePreferences replaces the stored defaults, creating dir if needed.
func (s *PrefsFileStore) SavePreferences(p domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	if err := writeJSON(s.Path(), p, 0o600); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Compile-time assertion that PrefsFileStore implements domain.PreferencesStore.
var _ domain.PreferencesStore = (*PrefsFileStore)(nil)
