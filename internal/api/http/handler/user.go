package handler

import (
	"context"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

const profilePictureField = "profilePicture"

// UserService defines profile operations.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.PublicUser, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params model.UpdateProfileParams) (model.PublicUser, error)
}

type profileResponse struct {
	Message string           `json:"message"`
	User    model.PublicUser `json:"user"`
}

// User handles the /user routes.
type User struct {
	users          UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(users UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{users: users, contextManager: contextManager, logger: logger}
}

// Profile returns the caller's profile.
func (h *User) Profile(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	user, err := h.users.GetProfile(c.UserContext(), p.UserID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(profileResponse{Message: "Profile retrieved successfully", User: user})
}

// UpdateProfile accepts either a JSON body or a multipart form carrying a picture.
func (h *User) UpdateProfile(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var params model.UpdateProfileParams
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		params, err = h.multipartParams(c)
	} else {
		var req updateProfileRequest
		err = bind(c, &req)
		params = model.UpdateProfileParams{Name: req.Name, PictureURL: req.ProfilePictureURL}
	}
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if params.Picture != nil {
		if closer, ok := params.Picture.Reader.(io.Closer); ok {
			defer closer.Close()
		}
	}

	user, err := h.users.UpdateProfile(c.UserContext(), p.UserID, params)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(profileResponse{Message: "Profile updated successfully", User: user})
}

func (h *User) multipartParams(c *fiber.Ctx) (model.UpdateProfileParams, error) {
	var params model.UpdateProfileParams

	form, err := c.MultipartForm()
	if err != nil {
		return params, apierrors.NewErrBadRequest("Invalid multipart form")
	}
	if names, ok := form.Value["name"]; ok && len(names) > 0 {
		params.Name = &names[0]
	}
	if urls, ok := form.Value["profilePictureUrl"]; ok && len(urls) > 0 {
		params.PictureURL = &urls[0]
	}

	for field := range form.File {
		if field != profilePictureField {
			return params, apierrors.NewErrBadRequest(
				"Unexpected field: " + field + ". Expected field name: '" + profilePictureField + "'")
		}
	}
	files := form.File[profilePictureField]
	if len(files) == 0 {
		return params, nil
	}

	header := files[0]
	file, err := header.Open()
	if err != nil {
		return params, apierrors.NewErrBadRequest("Failed to upload profile picture")
	}
	params.Picture = &model.ProfilePicture{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get(fiber.HeaderContentType),
	}
	return params, nil
}
