package domain

import "errors"

// Domain errors represent error conditions in the splitfile domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidDirective is returned when a directive has no mode or a
	// non-positive count.
	ErrInvalidDirective = errors.New("splitfile: invalid split directive")

	// ErrNegativeTotal is returned when Partition is asked to cover a
	// negative number of lines.
	ErrNegativeTotal = errors.New("splitfile: negative line total")
)
