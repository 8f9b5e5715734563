// Package models holds the client-side data model for the Nomina backend.
// Field names and JSON tags follow the backend's wire vocabulary.
package models

// Role is the closed set of roles the backend issues in the `rol` field.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleEmpleado Role = "Empleado"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmpleado:
		return true
	}
	return false
}

// User is the signed-in principal. Token is the bearer token issued at login;
// it travels with the profile so the pair can be persisted and restored
// together.
type User struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    Role   `json:"rol"`
	Token  string `json:"token,omitempty"`
}

// Authenticated reports whether u carries both an identity and a token.
// A profile without a token, or a token without a profile, never counts.
func (u *User) Authenticated() bool {
	return u != nil && u.Token != "" && u.ID != 0
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
