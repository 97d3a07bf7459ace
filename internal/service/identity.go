package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// PasswordResetRequestedMessage is returned by every password reset request,
// whether or not an OTP was actually sent.
const PasswordResetRequestedMessage = "If an account with that email exists, a password reset OTP has been sent"

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) (bool, error)
}

// Identity owns the account role lifecycle and the OTP protocols for
// registration and password reset. It keeps no state between calls.
type Identity struct {
	userStore     model.UserStore
	tokenStore    model.VerificationTokenStore
	notifier      model.Notifier
	hasher        PasswordHasher
	tokenService  *TokenService
	logger        *logger.Logger
	now           func() time.Time
	newOTP        func() (string, error)
	newResetToken func() (string, error)
}

// IdentityOption configures an Identity.
type IdentityOption func(*Identity)

// WithClock replaces the time source.
func WithClock(now func() time.Time) IdentityOption {
	return func(i *Identity) {
		if now != nil {
			i.now = now
		}
	}
}

// WithOTPGenerator replaces the one-time password generator.
func WithOTPGenerator(gen func() (string, error)) IdentityOption {
	return func(i *Identity) {
		if gen != nil {
			i.newOTP = gen
		}
	}
}

func NewIdentity(
	userStore model.UserStore,
	tokenStore model.VerificationTokenStore,
	notifier model.Notifier,
	hasher PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
	opts ...IdentityOption,
) *Identity {
	i := &Identity{
		userStore:     userStore,
		tokenStore:    tokenStore,
		notifier:      notifier,
		hasher:        hasher,
		tokenService:  tokenService,
		logger:        logger,
		now:           time.Now,
		newOTP:        generateOTP,
		newResetToken: generateResetToken,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SendRegistrationOTP reserves email with a TEMP account and mails a
// verification code. Repeating the call before verification overwrites the
// pending password and name.
func (i *Identity) SendRegistrationOTP(ctx context.Context, email, password, name string) error {
	email = normalizeEmail(email)
	i.logger.Debug("Identity service: starting registration",
		"email", email)

	existing, err := i.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		i.logger.Error("Identity service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if err == nil && existing.Role != model.RoleTemp {
		i.logger.Info("Identity service: email already registered",
			"email", email)
		return apierrors.NewErrEmailIsTaken(email)
	}

	hash, err := i.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := i.now()
	expiresAt := now.Add(model.PendingUserDuration)
	pending := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: &hash,
		Role:         model.RoleTemp,
		Name:         optionalString(name),
		ExpiresAt:    &expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	pending, err = i.userStore.UpsertPending(ctx, pending)
	if errors.Is(err, model.ErrAlreadyExists) {
		return apierrors.NewErrEmailIsTaken(email)
	}
	if err != nil {
		i.logger.Error("Identity service: failed to store pending user",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to store pending user: %w", err)
	}

	code, err := i.issueToken(ctx, pending, model.TokenKindOTP, model.OTPDuration, i.newOTP)
	if err != nil {
		return err
	}

	if err := i.notifier.SendRegistrationOTP(ctx, email, displayName(pending), code); err != nil {
		i.logger.Error("Identity service: failed to deliver registration OTP",
			"email", email,
			"error", err.Error())
		return apierrors.NewErrDeliveryFailed()
	}

	i.logger.Info("Identity service: registration OTP sent",
		"email", email,
		"user_id", pending.ID)

	return nil
}

// ResendOTP re-delivers the outstanding registration code without rotating it.
func (i *Identity) ResendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := i.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoPendingRegistration(email)
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if user.Role != model.RoleTemp {
		return apierrors.NewErrNoPendingRegistration(email)
	}

	token, err := i.tokenStore.FindActive(ctx, email, model.TokenKindOTP, i.now())
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoPendingRegistration(email)
	}
	if err != nil {
		return fmt.Errorf("failed to find active otp: %w", err)
	}

	if err := i.notifier.SendRegistrationOTP(ctx, email, displayName(user), token.Token); err != nil {
		i.logger.Error("Identity service: failed to resend registration OTP",
			"email", email,
			"error", err.Error())
		return apierrors.NewErrDeliveryFailed()
	}

	i.logger.Info("Identity service: registration OTP resent",
		"email", email)

	return nil
}

// VerifyOTPAndRegister consumes a registration code and promotes the pending
// account to USER.
func (i *Identity) VerifyOTPAndRegister(ctx context.Context, email, otp string) (model.AuthResult, error) {
	email = normalizeEmail(email)
	i.logger.Debug("Identity service: verifying registration OTP",
		"email", email)

	token, err := i.tokenStore.FindMatch(ctx, email, model.TokenKindOTP, otp, i.now())
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, apierrors.NewErrInvalidOrExpiredOTP()
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to find otp: %w", err)
	}

	user, err := i.userStore.GetByID(ctx, token.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, apierrors.NewErrInvalidOrExpiredOTP()
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if user.Role != model.RoleTemp {
		// A reset code for a registered account does not complete a registration.
		return model.AuthResult{}, apierrors.NewErrInvalidOrExpiredOTP()
	}

	user, err = i.userStore.Promote(ctx, user.ID, model.RoleUser)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, apierrors.NewErrInvalidOrExpiredOTP()
	}
	if err != nil {
		i.logger.Error("Identity service: failed to promote pending user",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to promote user: %w", err)
	}

	if err := i.tokenStore.Delete(ctx, token.ID); err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, fmt.Errorf("failed to delete otp: %w", err)
	}

	i.logger.Info("Identity service: registration completed",
		"email", email,
		"user_id", user.ID)

	return i.session(user)
}

// SendPasswordResetOTP mails a reset code to registered accounts with a
// password. The returned message never reveals whether that happened.
func (i *Identity) SendPasswordResetOTP(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)

	user, err := i.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return PasswordResetRequestedMessage, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if !user.Role.IsRegistered() || !user.HasPassword() {
		i.logger.Debug("Identity service: password reset skipped for ineligible account",
			"user_id", user.ID,
			"role", user.Role)
		return PasswordResetRequestedMessage, nil
	}

	code, err := i.issueToken(ctx, user, model.TokenKindOTP, model.OTPDuration, i.newOTP)
	if err != nil {
		i.logger.Error("Identity service: failed to issue password reset OTP",
			"user_id", user.ID,
			"error", err.Error())
		return PasswordResetRequestedMessage, nil
	}

	if err := i.notifier.SendPasswordResetOTP(ctx, email, displayName(user), code); err != nil {
		i.logger.Error("Identity service: failed to deliver password reset OTP",
			"user_id", user.ID,
			"error", err.Error())
		return PasswordResetRequestedMessage, nil
	}

	i.logger.Info("Identity service: password reset OTP sent",
		"user_id", user.ID)

	return PasswordResetRequestedMessage, nil
}

// VerifyPasswordResetOTP exchanges a reset code for a reset session.
func (i *Identity) VerifyPasswordResetOTP(ctx context.Context, email, otp string) (model.ResetSession, error) {
	email = normalizeEmail(email)

	token, err := i.tokenStore.FindMatch(ctx, email, model.TokenKindOTP, otp, i.now())
	if errors.Is(err, model.ErrNotFound) {
		return model.ResetSession{}, apierrors.NewErrInvalidOrExpiredOTP()
	}
	if err != nil {
		return model.ResetSession{}, fmt.Errorf("failed to find otp: %w", err)
	}

	user, err := i.userStore.GetByID(ctx, token.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ResetSession{}, apierrors.NewErrInvalidOrExpiredOTP()
	}
	if err != nil {
		return model.ResetSession{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !user.Role.IsRegistered() {
		return model.ResetSession{}, apierrors.NewErrInvalidOrExpiredOTP()
	}

	// Replace drops the consumed OTP together with any other token for the email.
	value, err := i.issueToken(ctx, user, model.TokenKindResetSession, model.ResetSessionDuration, i.newResetToken)
	if err != nil {
		return model.ResetSession{}, err
	}

	i.logger.Info("Identity service: password reset OTP verified",
		"user_id", user.ID)

	return model.ResetSession{
		Token:     value,
		ExpiresAt: i.now().Add(model.ResetSessionDuration),
	}, nil
}

// ResetPassword sets a new password using an outstanding reset session. When
// resetToken is empty any active session for the email is accepted.
func (i *Identity) ResetPassword(ctx context.Context, email, newPassword, resetToken string) error {
	email = normalizeEmail(email)
	now := i.now()

	var (
		session model.VerificationToken
		err     error
	)
	if resetToken != "" {
		session, err = i.tokenStore.FindMatch(ctx, email, model.TokenKindResetSession, resetToken, now)
	} else {
		session, err = i.tokenStore.FindActive(ctx, email, model.TokenKindResetSession, now)
	}
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoValidResetSession()
	}
	if err != nil {
		return fmt.Errorf("failed to find reset session: %w", err)
	}

	hash, err := i.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	err = i.userStore.UpdatePassword(ctx, session.UserID, hash)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoValidResetSession()
	}
	if err != nil {
		i.logger.Error("Identity service: failed to update password",
			"user_id", session.UserID,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := i.tokenStore.Delete(ctx, session.ID); err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to delete reset session: %w", err)
	}

	i.logger.Info("Identity service: password reset completed",
		"user_id", session.UserID)

	return nil
}

// GuestLogin creates an anonymous time-boxed account and opens a session for it.
func (i *Identity) GuestLogin(ctx context.Context) (model.AuthResult, error) {
	id := uuid.New()
	now := i.now()
	expiresAt := now.Add(model.GuestDuration)

	placeholder := "guest_" + id.String()
	name := "Guest_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	user, err := i.userStore.Create(ctx, model.User{
		ID:        id,
		Email:     placeholder + "@example.com",
		GoogleID:  &placeholder,
		Role:      model.RoleGuest,
		Name:      &name,
		ExpiresAt: &expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		i.logger.Error("Identity service: failed to create guest",
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create guest: %w", err)
	}

	i.logger.Info("Identity service: guest access granted",
		"user_id", user.ID,
		"expires_at", expiresAt)

	return i.session(user)
}

// Login authenticates a registered account by email and password.
func (i *Identity) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	email = normalizeEmail(email)

	user, err := i.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !user.Role.IsRegistered() || !user.HasPassword() {
		return model.AuthResult{}, apierrors.NewErrInvalidCredentials()
	}

	ok, err := i.hasher.Compare(*user.PasswordHash, password)
	if err != nil {
		return model.AuthResult{}, err
	}
	if !ok {
		i.logger.Info("Identity service: password mismatch",
			"user_id", user.ID)
		return model.AuthResult{}, apierrors.NewErrInvalidCredentials()
	}

	i.logger.Info("Identity service: login succeeded",
		"user_id", user.ID)

	return i.session(user)
}

// GoogleLogin resolves an OAuth profile to an account, linking or creating one.
func (i *Identity) GoogleLogin(ctx context.Context, profile model.ExternalProfile) (model.AuthResult, error) {
	if profile.ProviderID == "" {
		return model.AuthResult{}, apierrors.NewErrBadRequest("google profile has no id")
	}

	user, err := i.userStore.GetByGoogleID(ctx, profile.ProviderID)
	if err == nil {
		return i.session(user)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, fmt.Errorf("failed to get user by google id: %w", err)
	}

	email := normalizeEmail(profile.Email)
	if email == "" {
		return model.AuthResult{}, apierrors.NewErrBadRequest("google profile has no email")
	}

	existing, err := i.userStore.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, model.ErrNotFound):
		user, err = i.createGoogleUser(ctx, email, profile)
	case err != nil:
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	case !existing.Role.IsRegistered() && existing.Role != model.RoleTemp:
		return model.AuthResult{}, apierrors.NewErrEmailIsTaken(email)
	case !profile.EmailVerified:
		i.logger.Info("Identity service: google email not verified, refusing to link",
			"email", email,
			"user_id", existing.ID)
		return model.AuthResult{}, apierrors.NewErrUnverifiedExternalEmail(email)
	case existing.Role == model.RoleTemp:
		user, err = i.claimPending(ctx, existing, profile.ProviderID)
	default:
		user, err = i.userStore.LinkGoogleID(ctx, existing.ID, profile.ProviderID)
	}
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.AuthResult{}, apierrors.NewErrEmailIsTaken(email)
	}
	if err != nil {
		i.logger.Error("Identity service: failed to resolve google account",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to resolve google account: %w", err)
	}

	i.logger.Info("Identity service: google login succeeded",
		"user_id", user.ID)

	return i.session(user)
}

// claimPending hands a pending registration to the Google identity, discarding
// the pending password and any outstanding codes.
func (i *Identity) claimPending(ctx context.Context, pending model.User, googleID string) (model.User, error) {
	user, err := i.userStore.ClaimPendingWithGoogle(ctx, pending.ID, googleID)
	if err != nil {
		return model.User{}, err
	}
	if _, err := i.tokenStore.DeleteByIdentifier(ctx, pending.Email); err != nil {
		return model.User{}, fmt.Errorf("failed to delete pending tokens: %w", err)
	}
	return user, nil
}

func (i *Identity) createGoogleUser(ctx context.Context, email string, profile model.ExternalProfile) (model.User, error) {
	now := i.now()
	googleID := profile.ProviderID
	return i.userStore.Create(ctx, model.User{
		ID:                uuid.New(),
		Email:             email,
		GoogleID:          &googleID,
		Role:              model.RoleUser,
		Name:              optionalString(profile.Name),
		ProfilePictureURL: optionalString(profile.PictureURL),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

// issueToken stores a fresh token of kind for user, replacing every earlier
// token for the same email, and returns its value.
func (i *Identity) issueToken(
	ctx context.Context,
	user model.User,
	kind model.TokenKind,
	ttl time.Duration,
	generate func() (string, error),
) (string, error) {
	value, err := generate()
	if err != nil {
		return "", err
	}

	now := i.now()
	err = i.tokenStore.Replace(ctx, model.VerificationToken{
		ID:         uuid.New(),
		Identifier: user.Email,
		UserID:     user.ID,
		Kind:       kind,
		Token:      value,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
	})
	if err != nil {
		i.logger.Error("Identity service: failed to store verification token",
			"user_id", user.ID,
			"kind", kind,
			"error", err.Error())
		return "", fmt.Errorf("failed to store %s token: %w", kind, err)
	}

	return value, nil
}

func (i *Identity) session(user model.User) (model.AuthResult, error) {
	token, err := i.tokenService.Issue(user)
	if err != nil {
		return model.AuthResult{}, err
	}
	return model.AuthResult{Token: token, User: user.Public()}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func displayName(user model.User) string {
	if user.Name == nil {
		return ""
	}
	return *user.Name
}
