package interfaces

import domaintypes "biblia/internal/domain/types"

// PreferencesStore persists the user's defaults between runs.
type PreferencesStore interface {
	LoadPreferences() (domaintypes.Preferences, error)
	SavePreferences(p domaintypes.Preferences) error
}
