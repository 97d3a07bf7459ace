package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// OAuthStateDuration bounds the time between the Google redirect and its callback.
const OAuthStateDuration = 10 * time.Minute

// IdentityService defines the account lifecycle operations exposed over HTTP.
type IdentityService interface {
	SendRegistrationOTP(ctx context.Context, email, password, name string) error
	ResendOTP(ctx context.Context, email string) error
	VerifyOTPAndRegister(ctx context.Context, email, otp string) (model.AuthResult, error)
	SendPasswordResetOTP(ctx context.Context, email string) (string, error)
	VerifyPasswordResetOTP(ctx context.Context, email, otp string) (model.ResetSession, error)
	ResetPassword(ctx context.Context, email, newPassword, resetToken string) error
	GuestLogin(ctx context.Context) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
	GoogleLogin(ctx context.Context, profile model.ExternalProfile) (model.AuthResult, error)
}

// OAuthProvider drives the authorization-code flow of an external identity provider.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (model.ExternalProfile, error)
}

// StateTokens signs and verifies OAuth state values.
type StateTokens interface {
	GenerateStateToken(ttl time.Duration) (string, error)
	ParseStateToken(token string) error
}

type messageResponse struct {
	Message string `json:"message"`
}

type guestResponse struct {
	model.AuthResult
	Message string `json:"message"`
}

type resetSessionResponse struct {
	Message string `json:"message"`
	model.ResetSession
}

// Auth handles the /auth routes.
type Auth struct {
	identity IdentityService
	oauth    OAuthProvider
	states   StateTokens
	logger   *logger.Logger
}

// NewAuth creates a new Auth handler. oauth may be nil when Google sign-in is not configured.
func NewAuth(identity IdentityService, oauth OAuthProvider, states StateTokens, logger *logger.Logger) *Auth {
	return &Auth{
		identity: identity,
		oauth:    oauth,
		states:   states,
		logger:   logger,
	}
}

// Register starts an email registration.
func (h *Auth) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	if err := h.identity.SendRegistrationOTP(c.UserContext(), req.Email, req.Password, req.Name); err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(messageResponse{Message: "OTP sent to your email. Please verify to complete registration"})
}

// VerifyOTP completes a registration.
func (h *Auth) VerifyOTP(c *fiber.Ctx) error {
	var req otpRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	res, err := h.identity.VerifyOTPAndRegister(c.UserContext(), req.Email, req.OTP)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(res)
}

// ResendOTP re-delivers a pending registration code.
func (h *Auth) ResendOTP(c *fiber.Ctx) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	if err := h.identity.ResendOTP(c.UserContext(), req.Email); err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(messageResponse{Message: "OTP resent to your email"})
}

// Login authenticates with email and password.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	res, err := h.identity.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(res)
}

// Guest opens a time-boxed anonymous session.
func (h *Auth) Guest(c *fiber.Ctx) error {
	res, err := h.identity.GuestLogin(c.UserContext())
	if err != nil {
		h.logger.Error("Auth handler: guest login failed",
			"error", err.Error())
		return handleError(c, h.logger, err)
	}

	return c.JSON(guestResponse{AuthResult: res, Message: "Guest access granted (limited)"})
}

// ForgotPassword requests a password reset code.
func (h *Auth) ForgotPassword(c *fiber.Ctx) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	msg, err := h.identity.SendPasswordResetOTP(c.UserContext(), req.Email)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(messageResponse{Message: msg})
}

// VerifyPasswordResetOTP exchanges a reset code for a reset session.
func (h *Auth) VerifyPasswordResetOTP(c *fiber.Ctx) error {
	var req otpRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	session, err := h.identity.VerifyPasswordResetOTP(c.UserContext(), req.Email, req.OTP)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(resetSessionResponse{
		Message:      "OTP verified. You can now reset your password",
		ResetSession: session,
	})
}

// ResetPassword sets a new password within a reset session.
func (h *Auth) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	if err := h.identity.ResetPassword(c.UserContext(), req.Email, req.NewPassword, req.ResetToken); err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(messageResponse{Message: "Password reset successfully"})
}

// GoogleRedirect sends the browser to the Google consent screen.
func (h *Auth) GoogleRedirect(c *fiber.Ctx) error {
	if h.oauth == nil {
		return handleError(c, h.logger, apierrors.NewErrNotFound("Google sign-in"))
	}

	state, err := h.states.GenerateStateToken(OAuthStateDuration)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.Redirect(h.oauth.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback completes the Google sign-in.
func (h *Auth) GoogleCallback(c *fiber.Ctx) error {
	if h.oauth == nil {
		return handleError(c, h.logger, apierrors.NewErrNotFound("Google sign-in"))
	}

	if err := h.states.ParseStateToken(c.Query("state")); err != nil {
		h.logger.Info("Auth handler: rejected oauth state",
			"error", err.Error())
		return handleError(c, h.logger, apierrors.NewErrBadRequest("Invalid OAuth state"))
	}

	code := c.Query("code")
	if code == "" {
		return handleError(c, h.logger, apierrors.NewErrBadRequest("Missing authorization code"))
	}

	profile, err := h.oauth.Exchange(c.UserContext(), code)
	if err != nil {
		h.logger.Error("Auth handler: google code exchange failed",
			"error", err.Error())
		return handleError(c, h.logger, apierrors.NewErrUnauthorized("Google authentication failed"))
	}

	res, err := h.identity.GoogleLogin(c.UserContext(), profile)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(res)
}

// Private is reachable by registered accounts only.
func (h *Auth) Private(c *fiber.Ctx) error {
	return c.JSON(messageResponse{Message: "Private route accessed"})
}

// Content is reachable with the readContent permission.
func (h *Auth) Content(c *fiber.Ctx) error {
	return c.JSON(messageResponse{Message: "Content read access granted"})
}

// Users is reachable with the manageUsers permission.
func (h *Auth) Users(c *fiber.Ctx) error {
	return c.JSON(messageResponse{Message: "User management access granted"})
}
