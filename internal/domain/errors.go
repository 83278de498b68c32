package domain

import "errors"

var (
	// ErrInvalidRange is returned when a percentage is outside [0, 100]
	ErrInvalidRange = errors.New("percentage out of range")

	// ErrFirstAllocationMustBeFull is returned when a user without active allocations
	// allocates anything other than exactly 100%
	ErrFirstAllocationMustBeFull = errors.New("first allocation must be 100 percent")

	// ErrMaxProjectLimitExceeded is returned when a user would exceed the configured
	// number of distinct allocated projects
	ErrMaxProjectLimitExceeded = errors.New("max project limit exceeded")

	// ErrInvalidInput is returned for shape and sum violations
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when a lock or serialization conflict aborted
	// the operation. It is retryable.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrUpstreamUnavailable is returned when the balance source or a scoring source
	// cannot be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrGenericFailure wraps anything outside the declared taxonomy
	ErrGenericFailure = errors.New("operation failed")

	// ErrNotFound is returned when a referenced record does not exist
	ErrNotFound = errors.New("not found")
)

// IsTaxonomyError reports whether err belongs to the declared error taxonomy
func IsTaxonomyError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrFirstAllocationMustBeFull) ||
		errors.Is(err, ErrMaxProjectLimitExceeded) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConcurrentModification) ||
		errors.Is(err, ErrUpstreamUnavailable) ||
		errors.Is(err, ErrGenericFailure) ||
		errors.Is(err, ErrNotFound)
}
