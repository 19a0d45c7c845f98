package domain

import "time"

// Role decides the read scope of an actor.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Actor is the signed-in employee performing an operation.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the actor sees every employee's records.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanSee reports whether a record owned by employeeID is visible to the actor.
func (a Actor) CanSee(employeeID string) bool {
	return a.IsAdmin() || a.ID == employeeID
}

// Session is the persisted sign-in state.
type Session struct {
	Actor
	SignedInAt time.Time `json:"signedInAt"`
}
