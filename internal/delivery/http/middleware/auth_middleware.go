package middleware

import (
	"net/http"
	"strings"

	"placehub/internal/domain/service"
	"placehub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyRequester is the echo.Context key holding the derived Requester.
const ContextKeyRequester = "requester"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and derives the requester's
// capability set. Requests without a valid token are rejected.
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

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		SetRequester(c, usecase.RequesterFor(claims.UserID, claims.Role, claims.Superuser))

		return next(c)
	}
}

// OptionalAuthenticate derives a requester when a valid token is present and
// falls back to the anonymous requester otherwise. Malformed tokens are still
// rejected so a client never silently loses its identity.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			SetRequester(c, usecase.Anonymous())

			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		SetRequester(c, usecase.RequesterFor(claims.UserID, claims.Role, claims.Superuser))

		return next(c)
	}
}

// SetRequester stores the requester on the echo context.
func SetRequester(c echo.Context, r usecase.Requester) {
	c.Set(ContextKeyRequester, r)
}

// RequesterFrom extracts the requester set by the auth middleware. Handlers
// reached without any auth middleware see the anonymous requester.
func RequesterFrom(c echo.Context) usecase.Requester {
	if r, ok := c.Get(ContextKeyRequester).(usecase.Requester); ok {
		return r
	}

	return usecase.Anonymous()
}
