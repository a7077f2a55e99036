package store

import "errors"

// Sentinel errors returned by the stores. Handlers map these to HTTP status
// codes with errors.Is, so wrap rather than replace them.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateVIN      = errors.New("vin code already registered")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrMissingPassword   = errors.New("password is required")
	ErrNotFound          = errors.New("record not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidStatus     = errors.New("invalid order status")
)
