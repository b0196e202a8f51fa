package middleware

import (
	"net/http"
	"strings"

	"petspa/internal/domain/entity"
	"petspa/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// sessionContextKey is where the resolved session lives on echo.Context.
const sessionContextKey = "session"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and resolves it into a
// session. Authorization decisions happen in the use cases against that
// session; this middleware only establishes identity.
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

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Refresh tokens are only good for the refresh endpoint.
		if claims.Type != "access" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access token required"})
		}

		c.Set(sessionContextKey, &entity.Session{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// SessionFromContext returns the session set by Authenticate, or nil when the
// request was not authenticated.
func SessionFromContext(c echo.Context) *entity.Session {
	session, ok := c.Get(sessionContextKey).(*entity.Session)
	if !ok {
		return nil
	}

	return session
}
