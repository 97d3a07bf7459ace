package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/model"
)

func principal(c *fiber.Ctx, cm model.ContextManager) (model.Principal, error) {
	p, ok := cm.GetPrincipalFromContext(c.UserContext())
	if !ok {
		return model.Principal{}, apierrors.NewErrNoToken()
	}
	return p, nil
}
