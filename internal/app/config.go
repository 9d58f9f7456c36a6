package app

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"biblia/internal/domain"
)

// Environment overrides, consulted when the matching flag is unset.
const (
	EnvHome   = "BIBLIA_HOME"
	EnvAPIURL = "BIBLIA_API_URL"
	EnvLang   = "BIBLIA_LANG"
)

// DefaultTimeout bounds a whole lookup, body included.
const DefaultTimeout = 15 * time.Second

// Config holds runtime wiring options for building the app.
// Empty fields are filled from the environment, then the preferences file,
// then built-in defaults.
type Config struct {
	Home      string        // config directory, e.g. $HOME/.biblia
	APIURL    string        // API origin, e.g. https://jesusrestaura.com
	Lang      string        // message language, "es" or "en"
	Book      domain.BookID // default book for lookups
	Timeout   time.Duration // HTTP client timeout
	LogLevel  string        // debug, info, warn, error
	LogOutput io.Writer     // optional; defaults to os.Stderr
	HTTP      *http.Client  // optional; built from Timeout when nil
}

// DefaultHome returns ~/.biblia.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".biblia"), nil
}

// WithEnv fills empty fields from environment variables.
func (c Config) WithEnv(getenv func(string) string) Config {
	if c.Home == "" {
		c.Home = getenv(EnvHome)
	}
	if c.APIURL == "" {
		c.APIURL = getenv(EnvAPIURL)
	}
	if c.Lang == "" {
		c.Lang = getenv(EnvLang)
	}
	return c
}

// WithPreferences fills empty fields from stored preferences.
func (c Config) WithPreferences(p domain.Preferences) Config {
	if c.APIURL == "" {
		c.APIURL = p.APIURL
	}
	if c.Lang == "" {
		c.Lang = p.Lang
	}
	if c.Book == "" {
		c.Book = p.Book
	}
	return c
}
