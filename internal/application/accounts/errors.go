package accounts

import "errors"

// Registration and login failures surfaced verbatim to the caller.
var (
	ErrInvalidUsername    = errors.New("Username must be 3-50 characters (letters, digits, _ or -)")
	ErrInvalidEmail       = errors.New("Invalid email format")
	ErrInvalidPassword    = errors.New("Password must be at least 8 characters with a letter and a number")
	ErrUsernameTaken      = errors.New("Username already registered")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid username or password")
)
