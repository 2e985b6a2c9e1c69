package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")
	ErrInvalidState    = errors.New("cubesim: invalid cube state")
)
