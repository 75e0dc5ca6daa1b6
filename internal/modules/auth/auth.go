package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/sharebite/sharebite-backend/internal/modules/user"
)

// Principal is the signed-in identity carried through a request context.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  user.Role `json:"role"`
}

// IsAdmin reports whether the principal may manage listings.
func (p *Principal) IsAdmin() bool { return p.Role == user.RoleAdmin }

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies credentials and returns a signed session token and
	// the authenticated user. Invalid credentials are never distinguished
	// by field.
	Login(ctx context.Context, email, password string) (string, *user.User, error)

	// Authenticate validates a session token and returns its principal.
	Authenticate(tokenString string) (*Principal, error)
}
