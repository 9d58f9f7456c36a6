// Package i18n holds the user-facing message catalog.
//
// Messages are keyed by domain.MessageID and registered for Spanish (the
// default) and English in a golang.org/x/text catalog. A Printer resolves a
// requested language against the supported set and turns lookup errors into
// the single line shown to users:
//
//   - validation errors use their own message id
//   - transport errors always collapse to the generic connection message
//   - application errors prefer the server text, else the kind default
package i18n
