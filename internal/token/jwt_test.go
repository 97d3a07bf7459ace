package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaryof/diary-server/internal/model"
)

func TestJWT_SessionToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	tok, err := j.GenerateSessionToken(u, model.RoleUser, time.Hour)
	require.NoError(t, err)

	claims, err := j.ParseSessionToken(tok)
	require.NoError(t, err)
	assert.Equal(t, u, claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_SessionToken_Expired(t *testing.T) {
	now := time.Now()
	j := NewJWT("secret")
	j.now = func() time.Time { return now }

	tok, err := j.GenerateSessionToken(uuid.New(), model.RoleGuest, 15*time.Minute)
	require.NoError(t, err)

	j.now = func() time.Time { return now.Add(16 * time.Minute) }
	_, err = j.ParseSessionToken(tok)
	require.ErrorIs(t, err, model.ErrTokenExpired)
	assert.NotErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_SessionToken_Tampered(t *testing.T) {
	j := NewJWT("secret")
	tok, err := j.GenerateSessionToken(uuid.New(), model.RoleUser, time.Hour)
	require.NoError(t, err)

	other := NewJWT("other-secret")
	_, err = other.ParseSessionToken(tok)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = j.ParseSessionToken(tok[:len(tok)-2] + "xx")
	require.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = j.ParseSessionToken("garbage")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_SessionToken_Empty(t *testing.T) {
	j := NewJWT("secret")

	_, err := j.ParseSessionToken("")
	require.ErrorIs(t, err, model.ErrNoToken)
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	j := NewJWT("secret")
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    uuid.New(),
		Role:      model.RoleAdmin,
		TokenType: typeSession,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.ParseSessionToken(tok)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := NewJWT("secret")

	state, err := j.GenerateStateToken(10 * time.Minute)
	require.NoError(t, err)
	_, err = j.ParseSessionToken(state)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	session, err := j.GenerateSessionToken(uuid.New(), model.RoleUser, time.Hour)
	require.NoError(t, err)
	require.ErrorIs(t, j.ParseStateToken(session), model.ErrInvalidToken)
}

func TestJWT_StateToken(t *testing.T) {
	now := time.Now()
	j := NewJWT("secret")
	j.now = func() time.Time { return now }

	a, err := j.GenerateStateToken(10 * time.Minute)
	require.NoError(t, err)
	b, err := j.GenerateStateToken(10 * time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	require.NoError(t, j.ParseStateToken(a))

	j.now = func() time.Time { return now.Add(11 * time.Minute) }
	require.ErrorIs(t, j.ParseStateToken(a), model.ErrTokenExpired)
}
