package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/diaryof/diary-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, password_hash, google_id, role, name, profile_picture_url,
			  is_premium, premium_until, expires_at, created_at, updated_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	var role string
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.GoogleID, &role, &user.Name, &user.ProfilePictureURL,
		&user.IsPremium, &user.PremiumUntil, &user.ExpiresAt, &user.CreatedAt, &user.UpdatedAt,
	)
	user.Role = model.Role(role)
	return user, err
}

func (r *UserRepository) getOne(ctx context.Context, what, query string, args ...any) (model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", what, err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, "email", query, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, "id", query, id)
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`
	return r.getOne(ctx, "google id", query, googleID)
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, password_hash, google_id, role, name, profile_picture_url,
			  is_premium, premium_until, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.GoogleID, string(user.Role), user.Name, user.ProfilePictureURL,
		user.IsPremium, user.PremiumUntil, user.ExpiresAt, user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

// UpsertPending inserts a TEMP user or refreshes the TEMP row owning the same
// email. A conflicting non-TEMP row makes the WHERE clause fail, so nothing is
// returned.
func (r *UserRepository) UpsertPending(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, password_hash, role, name, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, 'TEMP', $4, $5, $6, $6)
			  ON CONFLICT (email) DO UPDATE
			  SET password_hash = EXCLUDED.password_hash,
			      name = EXCLUDED.name,
			      expires_at = EXCLUDED.expires_at,
			      updated_at = EXCLUDED.updated_at
			  WHERE users.role = 'TEMP'
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.ExpiresAt, user.CreatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to upsert pending user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Promote(ctx context.Context, id uuid.UUID, role model.Role) (model.User, error) {
	query := `UPDATE users SET role = $2, expires_at = NULL, updated_at = now()
			  WHERE id = $1 AND role = 'TEMP'
			  RETURNING ` + userColumns
	return r.getOne(ctx, "id for promotion", query, id, string(role))
}

func (r *UserRepository) LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) (model.User, error) {
	query := `UPDATE users SET google_id = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := r.getOne(ctx, "id for google link", query, id, googleID)
	if isUniqueViolation(err) {
		return model.User{}, model.ErrAlreadyExists
	}
	return user, err
}

func (r *UserRepository) ClaimPendingWithGoogle(ctx context.Context, id uuid.UUID, googleID string) (model.User, error) {
	query := `UPDATE users SET role = 'USER', expires_at = NULL, password_hash = NULL,
			  google_id = $2, updated_at = now()
			  WHERE id = $1 AND role = 'TEMP'
			  RETURNING ` + userColumns

	user, err := r.getOne(ctx, "id for google claim", query, id, googleID)
	if isUniqueViolation(err) {
		return model.User{}, model.ErrAlreadyExists
	}
	return user, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.User, error) {
	query := `UPDATE users
			  SET name = COALESCE($2, name),
			      profile_picture_url = COALESCE($3, profile_picture_url),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.getOne(ctx, "id for profile update", query, id, update.Name, update.ProfilePictureURL)
}

func (r *UserRepository) DeleteExpired(ctx context.Context, role model.Role, before time.Time) (int64, error) {
	query := `DELETE FROM users WHERE role = $1 AND expires_at IS NOT NULL AND expires_at <= $2`

	cmd, err := r.db.Exec(ctx, query, string(role), before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired users: %w", err)
	}

	return cmd.RowsAffected(), nil
}
