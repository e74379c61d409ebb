package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/internal/core/store"
	"github.com/qsafe/devicehub/pkg/token"
)

// HashPassword returns the bcrypt hash stored on an account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// AuthService implements login, logout and identity lookup.
type AuthService struct {
	store    *store.Shared
	issuer   *token.Issuer
	denylist ports.TokenDenylist
	logger   zerolog.Logger
}

func NewAuthService(st *store.Shared, issuer *token.Issuer, denylist ports.TokenDenylist, logger zerolog.Logger) *AuthService {
	return &AuthService{store: st, issuer: issuer, denylist: denylist, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var user domain.User
	var found bool
	_ = s.store.Read(func(st *store.Store) error {
		user, found = st.UserByEmail(email)
		return nil
	})
	if !found || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	raw, claims, err := s.issuer.Issue(user.ID, user.Email, string(user.AdminRole))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("role", string(user.AdminRole)).Msg("user logged in")
	return &ports.LoginResult{Token: raw, ExpiresAt: claims.Expiry(), User: user}, nil
}

// Logout revokes the token id until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return &domain.ValidationError{Field: "token", Reason: "missing token id"}
	}
	if err := s.denylist.Revoke(ctx, jti, expiresAt); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.logger.Info().Str("jti", jti).Msg("token revoked")
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID int) (*ports.Identity, error) {
	var user domain.User
	err := s.store.Read(func(st *store.Store) error {
		var err error
		user, err = st.User(userID)
		return err
	})
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			// the token outlived its account
			return nil, fmt.Errorf("user %d: %w", userID, domain.ErrInvalidCredentials)
		}
		return nil, err
	}
	return &ports.Identity{
		User:        user,
		Permissions: domain.ResolvePermissions(user.AdminRole),
		Legacy:      domain.LegacyAccessFor(user.AdminRole),
	}, nil
}

// CurrentRole reads the role from the store so a role change applies to
// tokens issued before it.
func (s *AuthService) CurrentRole(_ context.Context, userID int) (domain.Role, error) {
	var role domain.Role
	err := s.store.Read(func(st *store.Store) error {
		u, err := st.User(userID)
		role = u.AdminRole
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RoleNone, fmt.Errorf("user %d: %w", userID, domain.ErrInvalidCredentials)
		}
		return domain.RoleNone, err
	}
	return role, nil
}
