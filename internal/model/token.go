package model

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the payload of a session token.
type Claims struct {
	UserID    uuid.UUID
	Role      Role
	ExpiresAt time.Time
}

// TokenManager signs and verifies bearer tokens.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID, role Role, ttl time.Duration) (string, error)
	ParseSessionToken(token string) (Claims, error)
	GenerateStateToken(ttl time.Duration) (string, error)
	ParseStateToken(token string) error
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// AuthResult is returned by every operation that opens a session.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
