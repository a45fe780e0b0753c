package models

// Role is the authorization level of an account.
type Role string

// Supported roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user record in the database
type User struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash, never the plaintext
	Role         Role   `json:"role" db:"role"`         // "user" or "admin"
}
