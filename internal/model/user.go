package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles.
type Role string

const (
	// RoleUser is a registered account.
	RoleUser Role = "USER"
	// RoleAdmin is a registered account allowed to manage users.
	RoleAdmin Role = "ADMIN"
	// RoleGuest is an anonymous, time-boxed account.
	RoleGuest Role = "GUEST"
	// RoleTemp reserves an email while registration waits for OTP verification.
	RoleTemp Role = "TEMP"
)

// Roles returns every known role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleGuest, RoleTemp}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleGuest, RoleTemp:
		return true
	default:
		return false
	}
}

// IsEphemeral reports whether accounts with this role carry an expiry.
func (r Role) IsEphemeral() bool {
	return r == RoleGuest || r == RoleTemp
}

// IsRegistered reports whether the role belongs to a permanent account.
func (r Role) IsRegistered() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	// UpsertPending creates a TEMP user or refreshes an existing TEMP row with
	// the same email. It returns ErrAlreadyExists when a non-TEMP user owns the email.
	UpsertPending(ctx context.Context, user User) (User, error)
	// Promote moves a TEMP user to role and clears its expiry.
	Promote(ctx context.Context, id uuid.UUID, role Role) (User, error)
	LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) (User, error)
	// ClaimPendingWithGoogle turns a TEMP user into a USER owned by googleID
	// and clears its password.
	ClaimPendingWithGoogle(ctx context.Context, id uuid.UUID, googleID string) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (User, error)
	// DeleteExpired removes users with the given role whose expiry is before the cutoff.
	DeleteExpired(ctx context.Context, role Role, before time.Time) (int64, error)
}

// User represents a stored account.
type User struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      *string
	GoogleID          *string
	Role              Role
	Name              *string
	ProfilePictureURL *string
	IsPremium         bool
	PremiumUntil      *time.Time
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasPassword reports whether the account can log in with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// ProfileUpdate carries the profile fields a user may change. Nil fields are left untouched.
type ProfileUpdate struct {
	Name              *string
	ProfilePictureURL *string
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.ProfilePictureURL == nil
}

// PublicUser is the sanitized user returned to clients.
type PublicUser struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Name              *string    `json:"name"`
	Role              Role       `json:"role"`
	ProfilePictureURL *string    `json:"profilePictureUrl,omitempty"`
	IsPremium         bool       `json:"isPremium"`
	PremiumUntil      *time.Time `json:"premiumUntil,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// Public strips credentials and lifecycle fields from the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role,
		ProfilePictureURL: u.ProfilePictureURL,
		IsPremium:         u.IsPremium,
		PremiumUntil:      u.PremiumUntil,
		CreatedAt:         u.CreatedAt,
	}
}

// ExternalProfile is the identity asserted by an OAuth provider.
type ExternalProfile struct {
	ProviderID    string
	Email         string
	EmailVerified bool
	Name          string
	PictureURL    string
}

// ProfilePicture is an uploaded image.
type ProfilePicture struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// UpdateProfileParams carries a profile change. Picture takes precedence over PictureURL.
type UpdateProfileParams struct {
	Name       *string
	PictureURL *string
	Picture    *ProfilePicture
}
