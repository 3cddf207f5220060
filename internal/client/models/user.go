// Package models defines the client-side representations of the backend's
// users, universities and reviews, and the request bodies sent to it.
package models

// Role is the server-controlled authority of a user. The client never
// changes it.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the resolved identity returned by GET /auth/me.
// ID and Email are immutable from the client's point of view.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Role      Role   `json:"role"`
}

// IsAdmin reports whether the user may use the administration commands.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	switch {
	case u.Firstname == "":
		return u.Lastname
	case u.Lastname == "":
		return u.Firstname
	default:
		return u.Firstname + " " + u.Lastname
	}
}

// ProfilePatch is the body of PATCH /users/profile. Nil fields are left
// untouched both locally and on the wire.
type ProfilePatch struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
}

// Apply merges p into u and returns the result; u itself is not modified.
func (u User) Apply(p ProfilePatch) User {
	if p.Firstname != nil {
		u.Firstname = *p.Firstname
	}
	if p.Lastname != nil {
		u.Lastname = *p.Lastname
	}
	return u
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Firstname == nil && p.Lastname == nil
}
