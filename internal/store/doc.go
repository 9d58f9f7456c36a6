// Package store provides file-based persistence for biblia's preferences.
//
// Preferences are serialised as indented JSON under the user's configured
// home directory (default ~/.biblia) and replaced atomically on save. Lookup
// results are never stored.
package store
