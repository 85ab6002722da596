package auth

import (
	"context"
	"strings"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
)

// User is a stored account as seen by the authenticator.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// Identity returns the claim set for u. The password hash never leaves the package.
func (u *User) Identity() jwt.Identity {
	return jwt.Identity{Subject: u.ID, Name: u.Name, Email: u.Email}
}

// CredentialStore looks up users by normalised email.
// It returns ErrUserNotFound when no user matches.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
