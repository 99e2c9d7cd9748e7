package store

import "errors"

// ValidationError reports malformed input on a mutation. The operation aborts
// before any state is written.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrInvalidCredentials is returned on any login failure. It is deliberately
// generic so callers cannot distinguish an unknown email from a wrong
// password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotLoggedIn is returned by identity-scoped mutations when no session is
// active.
var ErrNotLoggedIn = errors.New("not logged in")
