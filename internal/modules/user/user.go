package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes organization admins from regular users. It is fixed
// at signup and read at login.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole validates a role string from a signup request. An empty
// value defaults to the regular user role.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser, "":
		return RoleUser, nil
	default:
		return "", fmt.Errorf("invalid role %q", value)
	}
}

// User represents a signed-up principal.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
