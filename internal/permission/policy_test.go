package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diaryof/diary-server/internal/model"
)

func TestPolicy_HasPermission(t *testing.T) {
	t.Parallel()

	p := NewDefaultPolicy()

	tests := []struct {
		role model.Role
		perm Permission
		want bool
	}{
		{model.RoleTemp, ReadContent, false},
		{model.RoleTemp, WriteContent, false},
		{model.RoleTemp, ManageUsers, false},
		{model.RoleGuest, ReadContent, true},
		{model.RoleGuest, WriteContent, false},
		{model.RoleGuest, ManageUsers, false},
		{model.RoleUser, ReadContent, true},
		{model.RoleUser, WriteContent, true},
		{model.RoleUser, ManageUsers, false},
		{model.RoleAdmin, ReadContent, true},
		{model.RoleAdmin, WriteContent, true},
		{model.RoleAdmin, ManageUsers, true},
		{model.Role("ROOT"), ReadContent, false},
		{model.RoleAdmin, Permission("deleteEverything"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.role)+"/"+string(tt.perm), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.HasPermission(tt.role, tt.perm))
		})
	}
}

func TestPolicy_Immutable(t *testing.T) {
	table := DefaultTable()
	p := NewPolicy(table)

	table[model.RoleGuest] = append(table[model.RoleGuest], WriteContent)
	table[model.RoleTemp] = []Permission{ReadContent}

	assert.False(t, p.HasPermission(model.RoleGuest, WriteContent))
	assert.False(t, p.HasPermission(model.RoleTemp, ReadContent))
}

func TestPolicy_Nil(t *testing.T) {
	var p *Policy
	assert.False(t, p.HasPermission(model.RoleAdmin, ReadContent))
	assert.Empty(t, p.Permissions(model.RoleAdmin))
}

func TestPolicy_Permissions(t *testing.T) {
	p := NewDefaultPolicy()

	assert.Equal(t, []Permission{ReadContent, WriteContent, ManageUsers}, p.Permissions(model.RoleAdmin))
	assert.Equal(t, []Permission{ReadContent}, p.Permissions(model.RoleGuest))
	assert.Empty(t, p.Permissions(model.RoleTemp))
}
