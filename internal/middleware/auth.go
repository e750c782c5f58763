package middleware

import (
	"context"
	"errors"
	"strings"

	"netflix-backend/internal/apperrors"
	"netflix-backend/internal/services"
	"netflix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const CtxClaimsKey = "auth_claims"

// Authenticator is the part of the auth service the middleware needs. It
// accepts a token only while the user's session is active.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*services.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token for a live session.
func RequireAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing bearer token")
		}

		claims, err := auth.Authenticate(c.UserContext(), raw)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
			}
			return utils.AppErrorResponse(c, err)
		}

		c.Locals(CtxClaimsKey, claims)
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid bearer token for a live session
// is present and lets every request through.
func OptionalAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
			if claims, err := auth.Authenticate(c.UserContext(), raw); err == nil {
				c.Locals(CtxClaimsKey, claims)
			}
		}
		return c.Next()
	}
}

func GetClaims(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(CtxClaimsKey).(*services.Claims)
	return claims
}

func bearerToken(header string) (string, bool) {
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(header[len("Bearer "):])
	return raw, raw != ""
}
