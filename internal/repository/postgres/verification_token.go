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

var _ model.VerificationTokenStore = (*VerificationTokenRepository)(nil)

const verificationTokenColumns = `id, identifier, user_id, kind, token, expires_at, created_at`

type VerificationTokenRepository struct {
	db *Connection
}

func NewVerificationTokenRepository(db *Connection) *VerificationTokenRepository {
	return &VerificationTokenRepository{
		db: db,
	}
}

func scanVerificationToken(row pgx.Row) (model.VerificationToken, error) {
	var t model.VerificationToken
	var kind string
	err := row.Scan(&t.ID, &t.Identifier, &t.UserID, &kind, &t.Token, &t.ExpiresAt, &t.CreatedAt)
	t.Kind = model.TokenKind(kind)
	return t, err
}

// Replace deletes every token for the identifier and inserts token in one transaction.
func (r *VerificationTokenRepository) Replace(ctx context.Context, token model.VerificationToken) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM verification_tokens WHERE identifier = $1`, token.Identifier); err != nil {
			return fmt.Errorf("failed to delete previous tokens: %w", err)
		}

		query := `INSERT INTO verification_tokens (id, identifier, user_id, kind, token, expires_at, created_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := tx.Exec(ctx, query,
			token.ID, token.Identifier, token.UserID, string(token.Kind), token.Token, token.ExpiresAt, token.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert token: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace verification token: %w", err)
	}

	return nil
}

func (r *VerificationTokenRepository) FindActive(ctx context.Context, identifier string, kind model.TokenKind, now time.Time) (model.VerificationToken, error) {
	query := `SELECT ` + verificationTokenColumns + `
			  FROM verification_tokens
			  WHERE identifier = $1 AND kind = $2 AND expires_at > $3
			  ORDER BY created_at DESC
			  LIMIT 1`

	t, err := scanVerificationToken(r.db.QueryRow(ctx, query, identifier, string(kind), now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VerificationToken{}, model.ErrNotFound
		}
		return model.VerificationToken{}, fmt.Errorf("failed to find active token: %w", err)
	}

	return t, nil
}

func (r *VerificationTokenRepository) FindMatch(ctx context.Context, identifier string, kind model.TokenKind, value string, now time.Time) (model.VerificationToken, error) {
	query := `SELECT ` + verificationTokenColumns + `
			  FROM verification_tokens
			  WHERE identifier = $1 AND kind = $2 AND token = $3 AND expires_at > $4
			  ORDER BY created_at DESC
			  LIMIT 1`

	t, err := scanVerificationToken(r.db.QueryRow(ctx, query, identifier, string(kind), value, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VerificationToken{}, model.ErrNotFound
		}
		return model.VerificationToken{}, fmt.Errorf("failed to find matching token: %w", err)
	}

	return t, nil
}

func (r *VerificationTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM verification_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *VerificationTokenRepository) DeleteByIdentifier(ctx context.Context, identifier string) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM verification_tokens WHERE identifier = $1`, identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tokens by identifier: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *VerificationTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM verification_tokens WHERE expires_at <= $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return cmd.RowsAffected(), nil
}
