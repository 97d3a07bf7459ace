package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// MaxProfilePictureSize is the largest accepted profile picture upload.
const MaxProfilePictureSize = 5 * 1024 * 1024

const profilePicturePrefix = "profile-pictures"

var pictureExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

type User struct {
	userStore model.UserStore
	storage   model.Storage
	logger    *logger.Logger
	now       func() time.Time
}

func NewUser(userStore model.UserStore, storage model.Storage, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

// GetProfile returns the sanitized profile of the user.
func (s *User) GetProfile(ctx context.Context, userID uuid.UUID) (model.PublicUser, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, apierrors.NewErrNotFound("User")
	}
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.Public(), nil
}

// UpdateProfile changes the user's name and picture. An uploaded picture
// replaces the previous one, which is removed from storage when it is ours.
func (s *User) UpdateProfile(ctx context.Context, userID uuid.UUID, params model.UpdateProfileParams) (model.PublicUser, error) {
	update := model.ProfileUpdate{Name: params.Name}

	if params.Picture != nil {
		url, err := s.replacePicture(ctx, userID, *params.Picture)
		if err != nil {
			return model.PublicUser{}, err
		}
		update.ProfilePictureURL = &url
	} else if params.PictureURL != nil && *params.PictureURL != "" {
		update.ProfilePictureURL = params.PictureURL
	}

	if update.IsEmpty() {
		return model.PublicUser{}, apierrors.NewErrBadRequest("No fields to update")
	}

	user, err := s.userStore.UpdateProfile(ctx, userID, update)
	if errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, apierrors.NewErrNotFound("User")
	}
	if err != nil {
		s.logger.Error("User service: failed to update profile",
			"user_id", userID,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("User service: profile updated",
		"user_id", userID)

	return user.Public(), nil
}

func (s *User) replacePicture(ctx context.Context, userID uuid.UUID, picture model.ProfilePicture) (string, error) {
	ext, ok := pictureExtensions[picture.ContentType]
	if !ok {
		return "", apierrors.NewErrBadRequest("Only image files are allowed")
	}
	if picture.Size > MaxProfilePictureSize {
		return "", apierrors.NewErrBadRequest("File size too large. Maximum size is 5MB")
	}

	current, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierrors.NewErrNotFound("User")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by id: %w", err)
	}

	key := fmt.Sprintf("%s/user-%s-%d.%s", profilePicturePrefix, userID, s.now().Unix(), ext)
	if err := s.storage.Upload(ctx, key, picture.Reader, picture.Size, picture.ContentType); err != nil {
		s.logger.Error("User service: failed to upload profile picture",
			"user_id", userID,
			"error", err.Error())
		return "", apierrors.NewErrBadRequest("Failed to upload profile picture")
	}

	if current.ProfilePictureURL != nil {
		if oldKey, ours := s.storage.KeyFromURL(*current.ProfilePictureURL); ours && oldKey != key {
			if err := s.storage.Delete(ctx, oldKey); err != nil {
				s.logger.Warn("User service: failed to delete old profile picture",
					"user_id", userID,
					"key", oldKey,
					"error", err.Error())
			}
		}
	}

	return s.storage.URL(key), nil
}
