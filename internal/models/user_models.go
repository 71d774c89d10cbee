package models

import "time"

// User roles.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleTreasurer = "treasurer"
	RoleViewer    = "viewer"
)

// User statuses.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User represents an operator account. A user is disjoint from a player:
// operating the books does not make someone a team member.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsValidUserRole reports whether the role is one of the closed enum values.
func IsValidUserRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleTreasurer, RoleViewer:
		return true
	}
	return false
}

// IsValidUserStatus reports whether the status is one of the closed enum values.
func IsValidUserStatus(status string) bool {
	switch status {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}
