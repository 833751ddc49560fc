package packages

import "errors"

// Error taxonomy surfaced to callers. Anything else coming out of storage is
// reported as a generic failure without internal detail.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrNotFound        = errors.New("package not found")
)
