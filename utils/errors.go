package utils

import "errors"

// Common application errors. Store and identity failures are classified
// into this small taxonomy; nothing is fatal to the process.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicate          = errors.New("resource already exists")
	ErrConflict           = errors.New("resource conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
)

// IsNotFound reports whether err is the not-found case. Callers that treat
// an absent document as an empty default check this before failing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AuthErrorKind classifies federated sign-in failures by cause. Each kind
// maps to a user-facing message; no retry is attempted for any of them.
type AuthErrorKind int

const (
	AuthUnknown AuthErrorKind = iota
	AuthBadCredentials
	AuthStateMismatch
	AuthCancelled
	AuthUnauthorizedOrigin
	AuthExchangeFailed
)

// Message returns the user-facing message for the failure kind.
func (k AuthErrorKind) Message() string {
	switch k {
	case AuthBadCredentials:
		return "Invalid email or password."
	case AuthStateMismatch:
		return "Sign-in session expired. Please try again."
	case AuthCancelled:
		return "Sign-in was cancelled."
	case AuthUnauthorizedOrigin:
		return "This domain is not authorized for Google sign-in."
	case AuthExchangeFailed:
		return "Could not reach the sign-in provider. Please try again."
	default:
		return "Sign-in failed. Please try again."
	}
}
