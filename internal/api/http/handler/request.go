package handler

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/apierrors"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 128
)

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into dst and validates it.
func bind(c *fiber.Ctx, dst validatable) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(dst); err != nil {
			return apierrors.NewErrBadRequest("Invalid request body")
		}
	}
	if err := dst.Validate(); err != nil {
		return apierrors.NewErrBadRequest(err.Error())
	}
	return nil
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, maxPasswordLength)),
		validation.Field(&r.Name, validation.Length(0, 100)),
	)
}

type emailRequest struct {
	Email string `json:"email"`
}

func (r emailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r otpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.OTP, validation.Required, validation.Length(6, 6), is.Digit),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
	ResetToken  string `json:"resetToken"`
}

func (r resetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(minPasswordLength, maxPasswordLength)),
		validation.Field(&r.ResetToken, is.Hexadecimal),
	)
}

type updateProfileRequest struct {
	Name              *string `json:"name"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

func (r updateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 100)),
		validation.Field(&r.ProfilePictureURL, is.URL),
	)
}

type createDayRequest struct {
	Date *string `json:"date"`
}

func (r createDayRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.By(isDate)),
	)
}

type createTaskRequest struct {
	DayID         *string `json:"dayId"`
	DayDate       *string `json:"dayDate"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Timestamp     *string `json:"timestamp"`
	AudioURL      *string `json:"audioUrl"`
	Transcription *string `json:"transcription"`
}

func (r createTaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DayID, is.UUID),
		validation.Field(&r.DayDate, validation.By(isDate)),
		validation.Field(&r.Timestamp, validation.By(isDate)),
		validation.Field(&r.AudioURL, is.URL),
	)
}

// isDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func isDate(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if _, err := parseDate(*s); err != nil {
		return errors.New("must be a valid date")
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func pathUUID(c *fiber.Ctx, name, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apierrors.NewErrNotFound(resource)
	}
	return id, nil
}
