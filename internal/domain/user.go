package domain

import "time"

// Role is the role a user plays in the system.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User represents a user entity in the system.
type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Role           Role       `json:"role"`
	Active         bool       `json:"is_active"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
	HashedPassword string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

// CanTeach reports whether the user may own courses.
func (u *User) CanTeach() bool {
	return u.Role == RoleInstructor || u.Role == RoleAdmin
}

// UserPatch carries a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Email          *string    `json:"email,omitempty"`
	Username       *string    `json:"username,omitempty"`
	FirstName      *string    `json:"first_name,omitempty"`
	LastName       *string    `json:"last_name,omitempty"`
	Role           *Role      `json:"role,omitempty"`
	Active         *bool      `json:"is_active,omitempty"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Username == nil && p.FirstName == nil && p.LastName == nil &&
		p.Role == nil && p.Active == nil && p.ProfilePicture == nil
}

// UserFilter narrows a user listing. Nil fields are not applied.
type UserFilter struct {
	Role   *Role
	Active *bool
}

// ValidRoles contains all valid user roles.
var ValidRoles = []Role{RoleStudent, RoleInstructor, RoleAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if string(r) == role {
			return true
		}
	}
	return false
}
