package ports

import (
	"context"
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// LoginResult is returned after a successful credential check.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// Identity is the caller as seen by /auth/me.
type Identity struct {
	User        domain.User
	Permissions domain.Permissions
	Legacy      domain.LegacyAccess
}

// RoleResolver returns the admin role an account holds right now. Unknown
// accounts yield domain.ErrInvalidCredentials.
type RoleResolver interface {
	CurrentRole(ctx context.Context, userID int) (domain.Role, error)
}

// AuthService issues and revokes access tokens.
type AuthService interface {
	RoleResolver
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, userID int) (*Identity, error)
}
