package middleware

import (
	"errors"
	"strings"

	"jobtrack/internal/pkg/session"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxAuthSubjectKey = "auth_subject"
	CtxEmailKey       = "email"
)

// AuthMiddleware verifies the externally-issued session token and stashes the
// identity subject in request locals. It never touches the database; whether
// an account row exists is decided downstream.
type AuthMiddleware struct {
	verifier session.Verifier
}

func NewAuthMiddleware(verifier session.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			if errors.Is(err, session.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxAuthSubjectKey, claims.Subject)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// AuthSubject reads the verified identity set by the middleware; the empty
// string means the request never passed authentication.
func AuthSubject(c fiber.Ctx) string {
	s, _ := c.Locals(CtxAuthSubjectKey).(string)
	return s
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
