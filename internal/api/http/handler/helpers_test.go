package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpctx "github.com/diaryof/diary-server/internal/api/http/context"
	"github.com/diaryof/diary-server/internal/model"
	"github.com/diaryof/diary-server/internal/testutil"
)

var testUserID = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(testutil.MakeNoopLogger()),
	})
}

// withPrincipal stands in for the authenticate middleware.
func withPrincipal(cm model.ContextManager, role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(cm.SetPrincipalToContext(c.UserContext(), model.Principal{UserID: testUserID, Role: role}))
		return c.Next()
	}
}

func newContextManager() *httpctx.Manager {
	return httpctx.NewManager()
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func strPtr(s string) *string { return &s }
