package actor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleOwner    Role = "owner"
	// RoleSystem is used by background jobs; never issued in tokens.
	RoleSystem Role = "system"
)

var roleHierarchy = map[Role]int{
	RoleCustomer: 1,
	RoleStaff:    2,
	RoleOwner:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleOwner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) AtLeast(min Role) bool {
	have, ok := roleHierarchy[r]
	want, ok2 := roleHierarchy[min]
	return ok && ok2 && have >= want
}

// Actor is whoever triggered an operation. Staff and owners are bound to one location.
type Actor struct {
	ID         uuid.UUID
	Role       Role
	LocationID uuid.UUID
}

var System = Actor{Role: RoleSystem}

func Anonymous() Actor {
	return Actor{Role: RoleCustomer}
}

func (a Actor) IsSystem() bool {
	return a.Role == RoleSystem
}

// CanManage reports whether the actor may run staff operations (min role) at the location.
func (a Actor) CanManage(locationID uuid.UUID, min Role) bool {
	if a.IsSystem() {
		return true
	}
	return a.Role.AtLeast(min) && a.LocationID == locationID
}

// Label is what gets recorded as cancelled_by.
func (a Actor) Label() string {
	if a.IsSystem() {
		return string(RoleSystem)
	}
	if a.ID == uuid.Nil {
		return string(a.Role)
	}
	return string(a.Role) + ":" + a.ID.String()
}
