package domain

import "errors"

// Domain errors represent failures a caller can tell apart with errors.Is.
var (
	// ErrNotFound indicates a requested symbol does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed argument or setting.
	ErrInvalidInput = errors.New("invalid input")

	// Dataset Errors.

	// ErrInputAccess indicates the source dataset is missing or unreadable.
	ErrInputAccess = errors.New("input access failed")

	// ErrMalformedInput indicates the source is not valid JSON, is not a JSON
	// object at the top level, or holds an entry that is not an object.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutputAccess indicates the destination could not be created or written.
	ErrOutputAccess = errors.New("output access failed")
)
