package models

import "time"

// Access is the variant an Identity resolves to.
type Access int

const (
	AccessAnonymous Access = iota
	AccessUser
	AccessAdmin
)

// Identity is the authentication context of a caller. It is produced once per
// request from the session and passed explicitly into every service call.
type Identity struct {
	UserID    int64
	Username  string
	Role      Role
	SessionID string
	ExpiresAt time.Time
}

// Anonymous returns the identity of an unauthenticated caller.
func Anonymous() Identity {
	return Identity{}
}

// System is the identity used for start-up tasks such as the admin bootstrap.
func System() Identity {
	return Identity{Username: "system", Role: RoleAdmin}
}

// Access returns the variant of i.
func (i Identity) Access() Access {
	switch {
	case i.Username == "":
		return AccessAnonymous
	case i.Role == RoleAdmin:
		return AccessAdmin
	default:
		return AccessUser
	}
}

// IsAuthenticated reports whether i belongs to a logged-in user of any role.
func (i Identity) IsAuthenticated() bool {
	return i.Access() != AccessAnonymous
}

// IsAdmin reports whether i carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Access() == AccessAdmin
}
