package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lifetimes of the identity artifacts.
const (
	// PendingUserDuration is how long a TEMP user reserves its email.
	PendingUserDuration = 15 * time.Minute
	// OTPDuration is the validity of a one-time password.
	OTPDuration = 10 * time.Minute
	// ResetSessionDuration is the validity of a reset-session token.
	ResetSessionDuration = 5 * time.Minute
	// GuestDuration is the lifetime of a guest account and its session.
	GuestDuration = 15 * time.Minute
	// SessionDuration is the lifetime of a regular session token.
	SessionDuration = time.Hour
)

// TokenKind discriminates verification tokens.
type TokenKind string

const (
	// TokenKindOTP is a numeric one-time password sent by email.
	TokenKindOTP TokenKind = "OTP"
	// TokenKindResetSession proves a password reset OTP was already verified.
	TokenKindResetSession TokenKind = "RESET_SESSION"
)

// VerificationTokenStore persists outstanding OTP and reset-session tokens.
type VerificationTokenStore interface {
	// Replace deletes every token for the identifier and stores token in its place.
	Replace(ctx context.Context, token VerificationToken) error
	// FindActive returns the newest unexpired token of the kind for the identifier.
	FindActive(ctx context.Context, identifier string, kind TokenKind, now time.Time) (VerificationToken, error)
	// FindMatch returns the unexpired token of the kind whose value equals value.
	FindMatch(ctx context.Context, identifier string, kind TokenKind, value string, now time.Time) (VerificationToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByIdentifier removes every token issued for the identifier.
	DeleteByIdentifier(ctx context.Context, identifier string) (int64, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// ResetSession is the short-lived credential returned after a reset OTP is verified.
type ResetSession struct {
	Token     string    `json:"resetToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// VerificationToken is one outstanding OTP or reset-session artifact.
type VerificationToken struct {
	ID         uuid.UUID
	Identifier string
	UserID     uuid.UUID
	Kind       TokenKind
	Token      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the token is no longer usable at now.
func (t VerificationToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
