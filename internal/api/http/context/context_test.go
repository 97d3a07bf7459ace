package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/diaryof/diary-server/internal/model"
)

func TestManager_SetAndGetPrincipal(t *testing.T) {
	m := NewManager()
	p := model.Principal{UserID: uuid.New(), Role: model.RoleUser}
	ctx := m.SetPrincipalToContext(stdctx.Background(), p)

	got, ok := m.GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, p, got)
}

func TestManager_GetPrincipal_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetPrincipalFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetPrincipal_Overrides(t *testing.T) {
	m := NewManager()
	first := model.Principal{UserID: uuid.New(), Role: model.RoleGuest}
	second := model.Principal{UserID: uuid.New(), Role: model.RoleAdmin}

	ctx := m.SetPrincipalToContext(stdctx.Background(), first)
	ctx = m.SetPrincipalToContext(ctx, second)

	got, ok := m.GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second, got)
}
