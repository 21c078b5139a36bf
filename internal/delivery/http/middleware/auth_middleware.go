package middleware

import (
	"net/http"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer tokens and resolves the actor for the
// request. The actor is the only identity source the handlers and use cases
// ever see; nothing identity-related is read from request payloads.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the resolved actor on
// the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header is missing", "")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token format, must be Bearer token", "")
		}

		session, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token", "")
		}

		deliverycontext.SetActor(c, authz.Actor{
			UserID: session.UserID,
			Role:   session.Role,
		})

		return next(c)
	}
}

// RequireAdmin rejects requests whose actor is not an admin. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok || actor.Role != entity.RoleAdmin {
			return response.Error(c, http.StatusForbidden, "ADMIN_ONLY", "this action requires administrator privileges", "")
		}

		return next(c)
	}
}
