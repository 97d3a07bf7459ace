package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/diaryof/diary-server/internal/api/http/context"
	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/mocks"
	"github.com/diaryof/diary-server/internal/model"
	"github.com/diaryof/diary-server/internal/testutil"
)

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"  Bearer   abc  ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bearerToken(tt.header), tt.header)
	}
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(ts *mocks.TokenService)
		wantStatus int
		wantError  string
	}{
		{
			name:   "valid token reaches handler",
			header: "Bearer good",
			setup: func(ts *mocks.TokenService) {
				ts.On("Authenticate", mock.Anything, "good").Return(model.Principal{UserID: userID, Role: model.RoleUser}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing header",
			header: "",
			setup: func(ts *mocks.TokenService) {
				ts.On("Authenticate", mock.Anything, "").Return(model.Principal{}, apierrors.NewErrNoToken())
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "No token provided",
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(ts *mocks.TokenService) {
				ts.On("Authenticate", mock.Anything, "forged").Return(model.Principal{}, apierrors.NewErrInvalidToken())
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
		{
			name:   "store failure",
			header: "Bearer good",
			setup: func(ts *mocks.TokenService) {
				ts.On("Authenticate", mock.Anything, "good").Return(model.Principal{}, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := mocks.NewTokenService(t)
			tt.setup(ts)
			cm := httpctx.NewManager()

			app := newTestApp()
			app.Use(NewAuthenticate(ts, cm, testutil.MakeNoopLogger()).Handle)
			app.Get("/", func(c *fiber.Ctx) error {
				p, ok := cm.GetPrincipalFromContext(c.UserContext())
				assert.True(t, ok)
				assert.Equal(t, userID, p.UserID)
				return c.SendStatus(http.StatusOK)
			})

			headers := map[string]string{}
			if tt.header != "" {
				headers[fiber.HeaderAuthorization] = tt.header
			}
			code, body := get(t, app, "/", headers)

			assert.Equal(t, tt.wantStatus, code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestAuthenticate_StoresPrincipalInUserContext(t *testing.T) {
	t.Parallel()

	principal := model.Principal{UserID: uuid.New(), Role: model.RoleGuest}
	type key struct{}
	scoped := context.WithValue(context.Background(), key{}, "scoped")

	ts := mocks.NewTokenService(t)
	ts.On("Authenticate", mock.Anything, "tok").Return(principal, nil)
	cm := mocks.NewContextManager(t)
	cm.On("SetPrincipalToContext", mock.Anything, principal).Return(scoped)

	app := newTestApp()
	app.Use(NewAuthenticate(ts, cm, testutil.MakeNoopLogger()).Handle)
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Equal(t, "scoped", c.UserContext().Value(key{}))
		return c.SendStatus(http.StatusNoContent)
	})

	code, _ := get(t, app, "/", map[string]string{fiber.HeaderAuthorization: "Bearer tok"})
	assert.Equal(t, http.StatusNoContent, code)
}
