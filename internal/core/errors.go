package core

import "errors"

// Error codes for local precondition failures.
const (
	ErrCodeUsernameLength    = "username_length"
	ErrCodeEmptyMessage      = "empty_message"
	ErrCodeNotLoggedIn       = "not_logged_in"
	ErrCodeNoPartnerSelected = "no_partner_selected"
)

var (
	ErrUsernameLength    = errors.New("username must be 3-20 characters")
	ErrEmptyMessage      = errors.New("message cannot be empty")
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrNoPartnerSelected = errors.New("no user selected to chat with")
)

// ValidationError wraps a code and human-readable message for a local
// precondition failure. It is always recovered locally and surfaced to the
// user, never propagated further.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(code, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}
