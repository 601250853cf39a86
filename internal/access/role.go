// Package access decides what an actor may do inside a business.
package access

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Role is an actor's effective standing in a business. Owner outranks every member role.
type Role string

const (
	RoleNone   Role = ""
	RoleViewer Role = "VIEWER"
	RoleEditor Role = "EDITOR"
	RoleAdmin  Role = "ADMIN"
	RoleOwner  Role = "OWNER"
)

// ParseMemberRole validates a role that can be granted to a member.
func ParseMemberRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return r, nil
	}
	return RoleNone, fmt.Errorf("invalid role %q, expected ADMIN, EDITOR or VIEWER", s)
}

// Capability is a class of operation gated by role.
type Capability int

const (
	CapabilityRead Capability = iota
	CapabilityWrite
	CapabilityDelete
	CapabilityManage
)

func (c Capability) String() string {
	switch c {
	case CapabilityRead:
		return "read"
	case CapabilityWrite:
		return "write"
	case CapabilityDelete:
		return "delete"
	case CapabilityManage:
		return "manage"
	}
	return "unknown"
}

// Decide resolves the effective role of actor in a business owned by owner.
// membership is the actor's member role in that business, nil when there is none.
func Decide(actor, owner uuid.UUID, membership *Role) Role {
	if actor == owner {
		return RoleOwner
	}
	if membership == nil {
		return RoleNone
	}
	return *membership
}

func (r Role) CanRead() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// CanWrite covers create and update.
func (r Role) CanWrite() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

func (r Role) CanDelete() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanManage covers the business itself and its membership list.
func (r Role) CanManage() bool {
	return r == RoleOwner
}

func (r Role) Allows(c Capability) bool {
	switch c {
	case CapabilityRead:
		return r.CanRead()
	case CapabilityWrite:
		return r.CanWrite()
	case CapabilityDelete:
		return r.CanDelete()
	case CapabilityManage:
		return r.CanManage()
	}
	return false
}
