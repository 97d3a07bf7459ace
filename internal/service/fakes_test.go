package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/model"
)

// clock is a settable time source shared by the service under test.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memUsers is an in-memory model.UserStore with the same uniqueness rules as
// the postgres schema.
type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[uuid.UUID]model.User)}
}

func (m *memUsers) find(match func(model.User) bool) (model.User, bool) {
	for _, u := range m.users {
		if match(u) {
			return u, true
		}
	}
	return model.User{}, false
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.find(func(u model.User) bool { return u.Email == email }); ok {
		return u, nil
	}
	return model.User{}, model.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return model.User{}, model.ErrNotFound
}

func (m *memUsers) GetByGoogleID(_ context.Context, googleID string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.find(func(u model.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID }); ok {
		return u, nil
	}
	return model.User{}, model.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, user model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.find(func(u model.User) bool { return u.Email == user.Email }); taken {
		return model.User{}, model.ErrAlreadyExists
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memUsers) UpsertPending(_ context.Context, user model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.find(func(u model.User) bool { return u.Email == user.Email })
	if !ok {
		user.Role = model.RoleTemp
		m.users[user.ID] = user
		return user, nil
	}
	if existing.Role != model.RoleTemp {
		return model.User{}, model.ErrAlreadyExists
	}
	existing.PasswordHash = user.PasswordHash
	existing.Name = user.Name
	existing.ExpiresAt = user.ExpiresAt
	existing.UpdatedAt = user.UpdatedAt
	m.users[existing.ID] = existing
	return existing, nil
}

func (m *memUsers) Promote(_ context.Context, id uuid.UUID, role model.Role) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.Role != model.RoleTemp {
		return model.User{}, model.ErrNotFound
	}
	u.Role = role
	u.ExpiresAt = nil
	m.users[id] = u
	return u, nil
}

func (m *memUsers) ClaimPendingWithGoogle(_ context.Context, id uuid.UUID, googleID string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.Role != model.RoleTemp {
		return model.User{}, model.ErrNotFound
	}
	u.Role = model.RoleUser
	u.ExpiresAt = nil
	u.PasswordHash = nil
	u.GoogleID = &googleID
	m.users[id] = u
	return u, nil
}

func (m *memUsers) LinkGoogleID(_ context.Context, id uuid.UUID, googleID string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	u.GoogleID = &googleID
	m.users[id] = u
	return u, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = &passwordHash
	m.users[id] = u
	return nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id uuid.UUID, update model.ProfileUpdate) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if update.Name != nil {
		u.Name = update.Name
	}
	if update.ProfilePictureURL != nil {
		u.ProfilePictureURL = update.ProfilePictureURL
	}
	m.users[id] = u
	return u, nil
}

func (m *memUsers) DeleteExpired(_ context.Context, role model.Role, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, u := range m.users {
		if u.Role == role && u.ExpiresAt != nil && !u.ExpiresAt.After(before) {
			delete(m.users, id)
			n++
		}
	}
	return n, nil
}

// memTokens is an in-memory model.VerificationTokenStore.
type memTokens struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]model.VerificationToken
}

func newMemTokens() *memTokens {
	return &memTokens{tokens: make(map[uuid.UUID]model.VerificationToken)}
}

func (m *memTokens) Replace(_ context.Context, token model.VerificationToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.tokens {
		if t.Identifier == token.Identifier {
			delete(m.tokens, id)
		}
	}
	m.tokens[token.ID] = token
	return nil
}

func (m *memTokens) first(match func(model.VerificationToken) bool) (model.VerificationToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found model.VerificationToken
	ok := false
	for _, t := range m.tokens {
		if match(t) && (!ok || t.CreatedAt.After(found.CreatedAt)) {
			found, ok = t, true
		}
	}
	if !ok {
		return model.VerificationToken{}, model.ErrNotFound
	}
	return found, nil
}

func (m *memTokens) FindActive(_ context.Context, identifier string, kind model.TokenKind, now time.Time) (model.VerificationToken, error) {
	return m.first(func(t model.VerificationToken) bool {
		return t.Identifier == identifier && t.Kind == kind && !t.Expired(now)
	})
}

func (m *memTokens) FindMatch(_ context.Context, identifier string, kind model.TokenKind, value string, now time.Time) (model.VerificationToken, error) {
	return m.first(func(t model.VerificationToken) bool {
		return t.Identifier == identifier && t.Kind == kind && t.Token == value && !t.Expired(now)
	})
}

func (m *memTokens) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.tokens, id)
	return nil
}

func (m *memTokens) DeleteByIdentifier(_ context.Context, identifier string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, t := range m.tokens {
		if t.Identifier == identifier {
			delete(m.tokens, id)
			n++
		}
	}
	return n, nil
}

func (m *memTokens) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, t := range m.tokens {
		if t.Expired(before) {
			delete(m.tokens, id)
			n++
		}
	}
	return n, nil
}

func (m *memTokens) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
}

type sentOTP struct {
	email string
	name  string
	code  string
}

// outbox records delivered codes and can be switched to fail.
type outbox struct {
	mu           sync.Mutex
	registration []sentOTP
	reset        []sentOTP
	fail         error
}

func (o *outbox) SendRegistrationOTP(_ context.Context, email, name, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fail != nil {
		return o.fail
	}
	o.registration = append(o.registration, sentOTP{email: email, name: name, code: code})
	return nil
}

func (o *outbox) SendPasswordResetOTP(_ context.Context, email, name, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fail != nil {
		return o.fail
	}
	o.reset = append(o.reset, sentOTP{email: email, name: name, code: code})
	return nil
}

func (o *outbox) lastRegistration() sentOTP {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.registration) == 0 {
		return sentOTP{}
	}
	return o.registration[len(o.registration)-1]
}

func (o *outbox) lastReset() sentOTP {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.reset) == 0 {
		return sentOTP{}
	}
	return o.reset[len(o.reset)-1]
}
