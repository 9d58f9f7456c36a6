package domain

import (
	interfaces "biblia/internal/domain/interfaces"
	types "biblia/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	BookID      = types.BookID
	Kind        = types.Kind
	Input       = types.Input
	Query       = types.Query
	Result      = types.Result
	Preferences = types.Preferences
)

// Lookup kinds.
const (
	KindVerse   = types.KindVerse
	KindChapter = types.KindChapter
	KindRange   = types.KindRange
	KindSearch  = types.KindSearch
)

// Kinds lists every lookup kind in display order.
var Kinds = types.Kinds

// NewBookID normalises s into a canonical book identifier.
func NewBookID(s string) BookID { return types.NewBookID(s) }

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	BibleClient      = interfaces.BibleClient
	PreferencesStore = interfaces.PreferencesStore
)
