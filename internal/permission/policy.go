// Package permission maps account roles to the actions they may perform.
package permission

import (
	"github.com/diaryof/diary-server/internal/model"
)

// Permission names an action guarded by the policy.
type Permission string

const (
	ReadContent  Permission = "readContent"
	WriteContent Permission = "writeContent"
	ManageUsers  Permission = "manageUsers"
)

// Policy is an immutable role to permission table.
type Policy struct {
	grants map[model.Role]map[Permission]struct{}
}

// NewPolicy copies table into a new Policy. Later changes to table are not observed.
func NewPolicy(table map[model.Role][]Permission) *Policy {
	grants := make(map[model.Role]map[Permission]struct{}, len(table))
	for role, perms := range table {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		grants[role] = set
	}
	return &Policy{grants: grants}
}

// DefaultTable returns the standard grants. TEMP users get nothing.
func DefaultTable() map[model.Role][]Permission {
	return map[model.Role][]Permission{
		model.RoleAdmin: {ReadContent, WriteContent, ManageUsers},
		model.RoleUser:  {ReadContent, WriteContent},
		model.RoleGuest: {ReadContent},
		model.RoleTemp:  {},
	}
}

// NewDefaultPolicy builds a Policy from DefaultTable.
func NewDefaultPolicy() *Policy {
	return NewPolicy(DefaultTable())
}

// HasPermission reports whether role is granted perm. Unknown roles and
// permissions are denied.
func (p *Policy) HasPermission(role model.Role, perm Permission) bool {
	if p == nil {
		return false
	}
	set, ok := p.grants[role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// Permissions returns the permissions granted to role.
func (p *Policy) Permissions(role model.Role) []Permission {
	if p == nil {
		return nil
	}
	out := make([]Permission, 0, len(p.grants[role]))
	for _, perm := range []Permission{ReadContent, WriteContent, ManageUsers} {
		if _, ok := p.grants[role][perm]; ok {
			out = append(out, perm)
		}
	}
	return out
}
