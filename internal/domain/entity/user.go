package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User is a staff account, consulted only for access control.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never plain after persisting
	Role         string // admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
