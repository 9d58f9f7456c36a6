package domain

import (
	"errors"
	"fmt"
)

// MessageID names a user-facing message in the message catalog.
type MessageID string

const (
	MsgInvalidReference MessageID = "invalid_reference"
	MsgInvalidChapter   MessageID = "invalid_chapter"
	MsgInvalidRange     MessageID = "invalid_range"
	MsgInvalidTerm      MessageID = "invalid_term"
	MsgInvalidKind      MessageID = "invalid_kind"
	MsgUnknownBook      MessageID = "unknown_book"
	MsgConnectionError  MessageID = "connection_error"
	MsgVerseNotFound    MessageID = "verse_not_found"
	MsgChapterNotFound  MessageID = "chapter_not_found"
	MsgRangeNotFound    MessageID = "range_not_found"
	MsgNoResults        MessageID = "no_results"
)

// Sentinel errors for the three failure classes of a lookup.
var (
	// ErrInvalidInput indicates local validation rejected the input; no request was sent.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTransport indicates the request or response body could not be exchanged.
	ErrTransport = errors.New("transport failure")
	// ErrApplication indicates the API answered with a failure.
	ErrApplication = errors.New("application error")
)

// ValidationError is a local, pre-network rejection of user input.
type ValidationError struct {
	Field     string    // input field that failed (reference, chapter, start, end, term, book, kind)
	MessageID MessageID // user-facing message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.MessageID)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// TransportError covers DNS, timeout, connection reset and malformed bodies.
// Users only ever see the generic connection message; Err is kept for logs.
type TransportError struct {
	Kind Kind
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s lookup: %s: %v", e.Kind, ErrTransport, e.Err)
	}
	return fmt.Sprintf("%s lookup: %s", e.Kind, ErrTransport)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// ApplicationError is a well-formed failure answer from the API.
// Message is the server-supplied text; when empty, MessageID holds the
// kind-specific default.
type ApplicationError struct {
	Kind      Kind
	Status    int
	Message   string
	MessageID MessageID
}

func (e *ApplicationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.MessageID)
	}
	return fmt.Sprintf("%s lookup: status %d: %s", e.Kind, e.Status, msg)
}

func (e *ApplicationError) Unwrap() error { return ErrApplication }

// NotFoundMessage returns the default failure message for kind.
func NotFoundMessage(kind Kind) MessageID {
	switch kind {
	case KindChapter:
		return MsgChapterNotFound
	case KindRange:
		return MsgRangeNotFound
	case KindSearch:
		return MsgNoResults
	default:
		return MsgVerseNotFound
	}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrInvalidInput) }
