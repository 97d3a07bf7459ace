package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/model"
)

// Claims represents JWT claims with token type, user ID and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID  `json:"id,omitempty"`
	Role      model.Role `json:"role,omitempty"`
	TokenType string     `json:"typ"`
	Nonce     string     `json:"nonce,omitempty"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey, now: time.Now}
}

const (
	typeSession = "session"
	typeState   = "state"
)

// GenerateSessionToken creates a bearer token for the user valid for ttl.
func (j *JWT) GenerateSessionToken(userID uuid.UUID, role model.Role, ttl time.Duration) (string, error) {
	now := j.now()
	return j.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: typeSession,
	})
}

// ParseSessionToken validates a session token and returns its claims.
func (j *JWT) ParseSessionToken(tokenString string) (model.Claims, error) {
	claims, err := j.parse(tokenString, typeSession)
	if err != nil {
		return model.Claims{}, err
	}
	if claims.UserID == uuid.Nil {
		return model.Claims{}, fmt.Errorf("%w: missing subject", model.ErrInvalidToken)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return model.Claims{
		UserID:    claims.UserID,
		Role:      claims.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateStateToken creates a signed OAuth state value valid for ttl.
func (j *JWT) GenerateStateToken(ttl time.Duration) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate state nonce: %w", err)
	}

	now := j.now()
	return j.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: typeState,
		Nonce:     hex.EncodeToString(nonce),
	})
}

// ParseStateToken validates an OAuth state value.
func (j *JWT) ParseStateToken(tokenString string) error {
	_, err := j.parse(tokenString, typeState)
	return err
}

func (j *JWT) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}

	return tokenString, nil
}

func (j *JWT) parse(tokenString, tokenType string) (*Claims, error) {
	if tokenString == "" {
		return nil, model.ErrNoToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %s", model.ErrTokenExpired, err.Error())
		}
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, model.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidToken, claims.TokenType)
	}
	return claims, nil
}
