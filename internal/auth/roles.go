package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/govkit/governance-service/pkg/util"
)

// RequireAdmin ensures the session carries the Admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("no active session")
		}
		if !sess.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}

// RequireManager ensures the session carries Manager or Admin role.
func RequireManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("no active session")
		}
		if !sess.IsManager() {
			return apperrors.NewForbidden("manager role required")
		}
		return c.Next()
	}
}
