package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"biblia/internal/bibleapi"
	"biblia/internal/books"
	"biblia/internal/i18n"
	"biblia/internal/screen"
	"biblia/internal/services/lookup"
	"biblia/internal/store"
)

// Wire bundles the stores, services, and clients for the CLI.
type Wire struct {
	Config  Config
	Logger  *slog.Logger
	HTTP    *http.Client
	Client  *bibleapi.Client
	Prefs   *store.PrefsFileStore
	Printer *i18n.Printer
	Lookups *lookup.Service
	Screens *screen.Set
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	cfg = cfg.WithEnv(os.Getenv)
	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return nil, err
		}
		cfg.Home = home
	}

	// Stored defaults sit under flags and env.
	prefs := store.NewPrefsFileStore(cfg.Home)
	p, err := prefs.LoadPreferences()
	if err != nil {
		return nil, err
	}
	cfg = cfg.WithPreferences(p)

	if cfg.APIURL == "" {
		cfg.APIURL = bibleapi.DefaultBaseURL
	}
	if err := CheckAPIURL(cfg.APIURL); err != nil {
		return nil, err
	}
	if cfg.Book == "" {
		cfg.Book = books.Default()
	}
	book, ok := books.Lookup(cfg.Book.String())
	if !ok {
		return nil, fmt.Errorf("unknown default book %q", cfg.Book)
	}
	cfg.Book = book
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	client := bibleapi.New(cfg.APIURL, httpClient, logger)
	return &Wire{
		Config:  cfg,
		Logger:  logger,
		HTTP:    httpClient,
		Client:  client,
		Prefs:   prefs,
		Printer: i18n.NewPrinter(cfg.Lang),
		Lookups: lookup.New(client, cfg.Book),
		Screens: screen.NewSet(client, screen.Options{DefaultBook: cfg.Book}),
	}, nil
}

// NewLogger builds the text logger on cfg.LogOutput at cfg.LogLevel.
func NewLogger(cfg Config) (*slog.Logger, error) {
	lvl := slog.LevelWarn
	if s := strings.TrimSpace(cfg.LogLevel); s != "" {
		if err := lvl.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), nil
}

// CheckAPIURL rejects anything but an absolute http(s) origin.
func CheckAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url %q: want http(s)://host", raw)
	}
	return nil
}
