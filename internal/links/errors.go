package links

import "errors"

// ErrNotFound is returned when no record exists for a shortcut.
var ErrNotFound = errors.New("link not found")

// ErrCorruptRecord is returned when a stored value cannot be decoded.
var ErrCorruptRecord = errors.New("corrupt link record")

// ValidationError reports a client-facing validation failure. Its message
// is safe to surface verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
