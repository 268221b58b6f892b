package middleware

import (
	"strings"

	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ctxKeyOwnerID = "ownerID"
	ctxKeyRoles   = "roles"

	// browsers cannot set headers on EventSource requests
	accessTokenQueryParam = "access_token"
)

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate resolves the caller from a Bearer token (or the access_token query
// parameter on stream requests) and stores it on the echo and request contexts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ctxKeyOwnerID, claims.UserID)
		c.Set(ctxKeyRoles, claims.Roles)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithOwnerID(c.Request().Context(), claims.UserID)))

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			for _, role := range roles {
				if role == requiredRole {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
		}
	}
}

// GetOwnerID returns the authenticated caller.
func GetOwnerID(c echo.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(ctxKeyOwnerID).(uuid.UUID)

	return ownerID, ok && ownerID != uuid.Nil
}

// GetRoles returns the roles of the authenticated caller.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(ctxKeyRoles).([]string)

	return roles, ok
}

func bearerToken(c echo.Context) (string, bool) {
	const prefix = "Bearer "

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		token := c.QueryParam(accessTokenQueryParam)

		return token, token != "" && strings.HasSuffix(c.Path(), "/stream")
	}

	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	return token, token != ""
}
