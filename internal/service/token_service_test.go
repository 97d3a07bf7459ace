package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaryof/diary-server/internal/apierrors"
	servermocks "github.com/diaryof/diary-server/internal/mocks"
	"github.com/diaryof/diary-server/internal/model"
	"github.com/diaryof/diary-server/internal/testutil"
)

func TestSessionTTL(t *testing.T) {
	assert.Equal(t, 15*time.Minute, SessionTTL(model.RoleGuest))
	assert.Equal(t, time.Hour, SessionTTL(model.RoleUser))
	assert.Equal(t, time.Hour, SessionTTL(model.RoleAdmin))
}

func TestTokenService_Issue(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		role    model.Role
		ttl     time.Duration
		mgrErr  error
		wantErr bool
	}{
		{name: "user session", role: model.RoleUser, ttl: time.Hour},
		{name: "guest session", role: model.RoleGuest, ttl: 15 * time.Minute},
		{name: "manager error", role: model.RoleUser, ttl: time.Hour, mgrErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := servermocks.NewTokenManager(t)
			store := servermocks.NewUserStore(t)
			manager.On("GenerateSessionToken", userID, tt.role, tt.ttl).Return("signed", tt.mgrErr).Once()

			svc := NewTokenService(manager, store, testutil.MakeNoopLogger())
			token, err := svc.Issue(model.User{ID: userID, Role: tt.role})

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed", token)
		})
	}
}

func TestTokenService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		token     string
		parseErr  error
		user      model.User
		lookupErr error
		wantKind  apierrors.Kind
		wantRole  model.Role
		wantErr   bool
	}{
		{
			name:     "empty token",
			token:    "",
			wantKind: apierrors.KindUnauthorized,
			wantErr:  true,
		},
		{
			name:     "invalid token",
			token:    "garbage",
			parseErr: model.ErrInvalidToken,
			wantKind: apierrors.KindUnauthorized,
			wantErr:  true,
		},
		{
			name:     "expired token",
			token:    "old",
			parseErr: fmt.Errorf("%w: exp", model.ErrTokenExpired),
			wantKind: apierrors.KindUnauthorized,
			wantErr:  true,
		},
		{
			name:      "subject deleted",
			token:     "valid",
			lookupErr: model.ErrNotFound,
			wantKind:  apierrors.KindUnauthorized,
			wantErr:   true,
		},
		{
			name:      "store failure",
			token:     "valid",
			lookupErr: assert.AnError,
			wantErr:   true,
		},
		{
			name:     "stored role wins",
			token:    "valid",
			user:     model.User{ID: userID, Role: model.RoleAdmin},
			wantRole: model.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := servermocks.NewTokenManager(t)
			store := servermocks.NewUserStore(t)

			if tt.token != "" {
				manager.On("ParseSessionToken", tt.token).
					Return(model.Claims{UserID: userID, Role: model.RoleUser}, tt.parseErr).Once()
				if tt.parseErr == nil {
					store.On("GetByID", ctx, userID).Return(tt.user, tt.lookupErr).Once()
				}
			}

			svc := NewTokenService(manager, store, testutil.MakeNoopLogger())
			principal, err := svc.Authenticate(ctx, tt.token)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantKind != "" {
					assert.True(t, apierrors.IsKind(err, tt.wantKind))
				} else {
					_, isAPI := apierrors.As(err)
					assert.False(t, isAPI)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, principal.UserID)
			assert.Equal(t, tt.wantRole, principal.Role)
		})
	}
}
