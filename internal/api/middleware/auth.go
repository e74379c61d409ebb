package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/pkg/token"
)

// Context keys set by Auth.
const (
	KeyUserID = "user_id"
	KeyEmail  = "email"
	KeyRole   = "role"
	KeyJTI    = "jti"
	KeyExpiry = "exp"
)

// Auth validates the bearer token, rejects revoked ones and injects the
// claims into the context. The role placed in the context is the one roles
// reports for the account now, not the one signed into the token. A failing
// denylist lookup is logged and the request continues.
func Auth(issuer *token.Issuer, denylist ports.TokenDenylist, roles ports.RoleResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				log.Warn().Err(err).Str("jti", claims.ID).Msg("denylist lookup failed")
			} else if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			role, err := roles.CurrentRole(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
				}
				return err
			}
			if string(role) != claims.Role {
				log.Debug().Int("user_id", userID).Str("token_role", claims.Role).Str("role", string(role)).Msg("role changed since login")
			}

			c.Set(KeyUserID, userID)
			c.Set(KeyEmail, claims.Email)
			c.Set(KeyRole, string(role))
			c.Set(KeyJTI, claims.ID)
			c.Set(KeyExpiry, claims.Expiry())

			return next(c)
		}
	}
}
