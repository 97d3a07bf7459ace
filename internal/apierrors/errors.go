// Package apierrors defines the typed failures surfaced to API clients.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API error.
type Kind string

const (
	KindConflict           Kind = "Conflict"
	KindInvalidOrExpired   Kind = "InvalidOrExpired"
	KindNoValidSession     Kind = "NoValidSession"
	KindNotFound           Kind = "NotFound"
	KindDeliveryFailed     Kind = "DeliveryFailed"
	KindUnauthorized       Kind = "Unauthorized"
	KindForbidden          Kind = "Forbidden"
	KindBadRequest         Kind = "BadRequest"
	KindInvalidCredentials Kind = "InvalidCredentials"
)

// APIError is a failure that is safe to show to the caller.
type APIError struct {
	Kind     Kind
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches API errors by kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an API error of kind k.
func IsKind(err error, k Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == k
}

func newError(kind Kind, code int, msg string) *APIError {
	return &APIError{Kind: kind, HTTPCode: code, Message: msg}
}

// NewErrEmailIsTaken is returned when a registered account already owns the email.
func NewErrEmailIsTaken(email string) *APIError {
	return newError(KindConflict, http.StatusConflict, fmt.Sprintf("user with email %s already exists", email))
}

// NewErrUnverifiedExternalEmail is returned when an external identity claims an
// existing account through an address its provider has not verified.
func NewErrUnverifiedExternalEmail(email string) *APIError {
	return newError(KindConflict, http.StatusConflict,
		fmt.Sprintf("email %s is not verified by the sign-in provider", email))
}

// NewErrInvalidOrExpiredOTP is returned when no active one-time password matches.
func NewErrInvalidOrExpiredOTP() *APIError {
	return newError(KindInvalidOrExpired, http.StatusBadRequest, "invalid or expired OTP")
}

// NewErrNoValidResetSession is returned when a password change lacks a reset session.
func NewErrNoValidResetSession() *APIError {
	return newError(KindNoValidSession, http.StatusBadRequest, "no valid reset session found, please verify OTP again")
}

// NewErrNoPendingRegistration is returned when there is nothing to resend.
func NewErrNoPendingRegistration(email string) *APIError {
	return newError(KindNotFound, http.StatusNotFound, fmt.Sprintf("no pending registration found for %s", email))
}

// NewErrNotFound is returned when a resource does not exist.
func NewErrNotFound(resource string) *APIError {
	return newError(KindNotFound, http.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

// NewErrDeliveryFailed is returned when the email gateway rejects a message.
func NewErrDeliveryFailed() *APIError {
	return newError(KindDeliveryFailed, http.StatusInternalServerError, "failed to send OTP email")
}

// NewErrNoToken is returned when a protected route is called without a bearer token.
func NewErrNoToken() *APIError {
	return newError(KindUnauthorized, http.StatusUnauthorized, "No token provided")
}

// NewErrInvalidToken is returned for unusable bearer tokens.
func NewErrInvalidToken() *APIError {
	return newError(KindUnauthorized, http.StatusUnauthorized, "Invalid token")
}

// NewErrForbidden is returned when the caller lacks the role or permission.
func NewErrForbidden(msg string) *APIError {
	return newError(KindForbidden, http.StatusForbidden, msg)
}

// NewErrBadRequest is returned for malformed or invalid input.
func NewErrBadRequest(msg string) *APIError {
	return newError(KindBadRequest, http.StatusBadRequest, msg)
}

// NewErrInvalidCredentials is returned by password login for any mismatch.
func NewErrInvalidCredentials() *APIError {
	return newError(KindInvalidCredentials, http.StatusUnauthorized, "Invalid credentials")
}

// NewErrUnauthorized is returned when an external authentication step fails.
func NewErrUnauthorized(msg string) *APIError {
	return newError(KindUnauthorized, http.StatusUnauthorized, msg)
}
