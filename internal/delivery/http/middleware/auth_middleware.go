package middleware

import (
	"errors"
	"strings"

	"jobtalk/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxEmployerIDKey = "employer_id"
	CtxEmailKey      = "email"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware requires a valid employer bearer token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxEmployerIDKey, claims.EmployerID)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// Optional resolves the employer identity when a token is present but lets
// unauthenticated requests through; reads then fall back to the guest cache
// bucket.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
			if claims, err := m.jwt.ValidateToken(token); err == nil {
				c.Locals(CtxEmployerIDKey, claims.EmployerID)
				c.Locals(CtxEmailKey, claims.Email)
			}
		}
		return c.Next()
	}
}

// EmployerID returns the resolved identity, zero when unauthenticated.
func EmployerID(c fiber.Ctx) int64 {
	if v, ok := c.Locals(CtxEmployerIDKey).(int64); ok {
		return v
	}
	return 0
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
