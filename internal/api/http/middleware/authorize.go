package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
	"github.com/diaryof/diary-server/internal/permission"
)

// PermissionChecker answers role to permission lookups.
type PermissionChecker interface {
	HasPermission(role model.Role, perm permission.Permission) bool
}

// Authorize gates routes on the authenticated principal's role.
type Authorize struct {
	policy         PermissionChecker
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthorize(policy PermissionChecker, contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{policy: policy, contextManager: contextManager, logger: logger}
}

// RequireRole admits principals holding one of roles.
func (m *Authorize) RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := m.contextManager.GetPrincipalFromContext(c.UserContext())
		if !ok {
			return apierrors.NewErrNoToken()
		}
		if !slices.Contains(roles, p.Role) {
			m.logger.Info("Authorize middleware: role denied",
				"user_id", p.UserID,
				"role", p.Role,
				"path", c.Path())
			return apierrors.NewErrForbidden("Access denied")
		}
		return c.Next()
	}
}

// RequirePermission admits principals whose role grants perm.
func (m *Authorize) RequirePermission(perm permission.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := m.contextManager.GetPrincipalFromContext(c.UserContext())
		if !ok {
			return apierrors.NewErrNoToken()
		}
		if !m.policy.HasPermission(p.Role, perm) {
			m.logger.Info("Authorize middleware: permission denied",
				"user_id", p.UserID,
				"role", p.Role,
				"permission", perm,
				"path", c.Path())
			return apierrors.NewErrForbidden("Permission denied")
		}
		return c.Next()
	}
}
