// Package screen models a lookup screen as an explicit state machine.
//
// A Screen serves one lookup kind and moves through
//
//	Idle -> Loading -> Resolved | Failed
//
// re-entering Loading on every accepted submission. Invalid input is rejected
// before any state change and never reaches the client. A screen owns the
// cancellation handle of its single in-flight request: a new submission
// cancels the previous one, and completions that are no longer current are
// dropped, so displayed state always belongs to the latest submission.
//
// Table is the flat list of named screens, including the legacy bible/*
// names; Set lazily creates one Screen per name.
package screen
