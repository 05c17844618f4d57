// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"teslo/internal/domain/entity"
	"teslo/internal/domain/repository"
	"teslo/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userContextKey is where the resolved identity is stored on the Echo context.
const userContextKey = "authUser"

// AuthMiddleware is the request-authentication guard: it validates the bearer
// token and resolves its subject to a stored identity before the handler runs.
// Handlers downstream (including the token re-issuance endpoint) trust this
// resolution completely.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer JWT and loads the identity it asserts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token subject no longer exists"})
			}

			// A store failure is not a credential problem. Let the central
			// error handler report it as an internal failure.
			return errors.Wrap(err, "failed to load token subject")
		}
		if !user.IsActive {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account is inactive"})
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity missing"})
			}

			if !slices.Contains(user.Roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// UserFromContext returns the identity resolved by Authenticate, if any.
func UserFromContext(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(userContextKey).(*entity.User)

	return user, ok
}
