package model

import "errors"

// Sentinel errors shared across services; handlers map them to HTTP statuses.
var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a listing id absent from the catalog.
	ErrNotFound = errors.New("listing not found")

	// ErrZeroTargetPrice marks a location preference whose target price
	// would divide by zero in the scoring formula.
	ErrZeroTargetPrice = errors.New("target price must be greater than zero")

	// ErrAssistantUnavailable marks a failed call to the external assistant.
	// The caller surfaces it; there is no retry and no fallback reply.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
