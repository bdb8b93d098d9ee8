package store

import "errors" // Sentinel error definitions

// Errors returned by the credential and feedback stores
var (
	ErrDuplicate      = errors.New("username or email already taken") // Uniqueness violation on register
	ErrNotFound       = errors.New("record not found")                // Missing user or feedback row
	ErrBadCredentials = errors.New("invalid username or password")    // Unknown user or wrong password (indistinguishable)
	ErrEmptyField     = errors.New("required field is empty")         // Missing title or content
)
