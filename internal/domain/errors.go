package domain

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is called in a
	// phase that forbids it (e.g. submitting twice for one question).
	ErrInvalidTransition = errors.New("operation not valid in current phase")
	// ErrEmptyCatalog is returned when a session would start with zero
	// sampleable questions.
	ErrEmptyCatalog = errors.New("catalog has no sampleable questions")
	// ErrMissingVerdict is returned when a clue case is finalized before
	// a verdict has been chosen.
	ErrMissingVerdict = errors.New("verdict not set")
	// ErrUnknownZone indicates a zone ID absent from the current document.
	ErrUnknownZone = errors.New("zone not found in case")
	// ErrUnknownReason indicates a reason code outside the case's palette.
	ErrUnknownReason = errors.New("reason code not in case palette")
	// ErrInvalidVerdict indicates a verdict value other than benign/malicious.
	ErrInvalidVerdict = errors.New("verdict must be benign or malicious")
	// ErrCatalogNotFound indicates the question catalog could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrCaseNotFound indicates the clue case could not be loaded.
	ErrCaseNotFound = errors.New("clue case not found")
	// ErrSessionNotFound is returned when a session ID is unknown or the
	// session has been torn down.
	ErrSessionNotFound = errors.New("game session not found")
)
