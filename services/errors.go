package services

import "errors"

// Business-rule failures surfaced verbatim to the handlers. None of these is
// transient: they are either caller mistakes or genuine rule violations, so
// nothing here is ever retried internally.
var (
	// ErrNotFound covers unknown students, courses, words and users
	ErrNotFound = errors.New("resource not found")
	// ErrAccessDenied is raised on any role or ownership mismatch
	ErrAccessDenied = errors.New("access denied")
	// ErrNoWordsAvailable is raised when the eligible word set is empty
	ErrNoWordsAvailable = errors.New("no words available")
	// ErrInvalidRequest is raised on malformed role/target combinations
	ErrInvalidRequest = errors.New("invalid request")
)
