package core

import "errors"

// Common errors.
var (
	// ErrAcquisition means the reference table could not be fetched or does not have
	// the expected alias-group/frequency shape.
	ErrAcquisition = errors.New("table acquisition failed")

	// ErrInconsistent means an alias group could not be resolved to a single frequency.
	ErrInconsistent = errors.New("inconsistent note table")

	// ErrCollision means two aliases would produce the same variant or accept the same text.
	ErrCollision = errors.New("alias collision")

	// ErrInvalidIdentifier means an alias does not normalize to a usable identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
