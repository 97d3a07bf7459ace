package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// TokenService resolves bearer tokens to principals.
type TokenService interface {
	Authenticate(ctx context.Context, token string) (model.Principal, error)
}

// Authenticate validates bearer tokens and injects the principal into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header and rejects the request without a valid session.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	principal, err := m.tokenService.Authenticate(c.UserContext(), bearerToken(c.Get(fiber.HeaderAuthorization)))
	if err != nil {
		if _, ok := apierrors.As(err); !ok {
			m.logger.Error("Authenticate middleware: token lookup failed",
				"path", c.Path(),
				"error", err.Error())
		}
		return err
	}

	c.SetUserContext(m.contextManager.SetPrincipalToContext(c.UserContext(), principal))
	return c.Next()
}

// bearerToken returns the credential part of an Authorization header value.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
