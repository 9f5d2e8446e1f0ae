package conversation

import "errors"

// Classification errors. They never reach the user; the classifier collapses
// them to a plain conversation intent.
var (
	ErrNoPatternMatch        = errors.New("no local pattern matched")
	ErrFallbackUnavailable   = errors.New("fallback model unavailable")
	ErrFallbackUnparsable    = errors.New("fallback response has no parsable JSON object")
	ErrFallbackMissingIntent = errors.New("fallback response has no intent field")
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
)
