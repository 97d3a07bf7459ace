package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on unique constraint violations.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNoToken is returned when a request carries no bearer token.
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidToken is returned for tampered, malformed or unresolvable tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrDeliveryFailed is returned when the mail gateway rejects a message.
	ErrDeliveryFailed = errors.New("delivery failed")
)
