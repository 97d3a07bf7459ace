package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// TokenService issues session tokens and resolves bearer tokens back to
// principals. It composes the TokenManager and UserStore.
type TokenService struct {
	manager   model.TokenManager
	userStore model.UserStore
	logger    *logger.Logger
}

func NewTokenService(manager model.TokenManager, userStore model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, userStore: userStore, logger: logger}
}

// SessionTTL returns the session lifetime for role. Guest sessions never
// outlive the guest account.
func SessionTTL(role model.Role) time.Duration {
	if role == model.RoleGuest {
		return model.GuestDuration
	}
	return model.SessionDuration
}

// Issue creates a session token for user.
func (s *TokenService) Issue(user model.User) (string, error) {
	token, err := s.manager.GenerateSessionToken(user.ID, user.Role, SessionTTL(user.Role))
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// Authenticate parses a bearer token and re-reads its subject. A subject that no
// longer exists, such as a reaped guest, makes the token invalid.
func (s *TokenService) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, apierrors.NewErrNoToken()
	}

	claims, err := s.manager.ParseSessionToken(token)
	if err != nil {
		if errors.Is(err, model.ErrNoToken) {
			return model.Principal{}, apierrors.NewErrNoToken()
		}
		s.logger.Debug("Token service: rejected bearer token",
			"error", err.Error())
		return model.Principal{}, apierrors.NewErrInvalidToken()
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Token service: token subject no longer exists",
			"user_id", claims.UserID)
		return model.Principal{}, apierrors.NewErrInvalidToken()
	}
	if err != nil {
		return model.Principal{}, fmt.Errorf("failed to get token subject: %w", err)
	}

	return model.Principal{UserID: user.ID, Role: user.Role}, nil
}
