package core

import "errors"

// Sentinel errors shared across services, storage and the HTTP layer.
// ErrNotFound deliberately covers "exists but not yours" as well, so callers
// cannot probe for other users' entities.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInconsistentState  = errors.New("inconsistent ledger state")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
