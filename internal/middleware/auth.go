package middleware

import (
	"strings"

	"aimlink-backend/internal/auth"
	"aimlink-backend/internal/models"
	"aimlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const adminLocal = "admin"

// RequireAdmin gates a route behind a valid bearer token. It extracts the
// Authorization header, verifies the token, and resolves the email claim to a
// live admin row, so tokens of removed admins are rejected. All failures are
// 401.
func RequireAdmin(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return response.Unauthorized(c, "Missing bearer token")
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		email, err := auth.VerifyToken(svc.JWTSecret, tokenStr)
		if err != nil {
			return response.Unauthorized(c, err.Error())
		}

		admin, err := svc.FindByEmail(c.Context(), email)
		if err != nil {
			if err == auth.ErrAdminNotFound {
				return response.Unauthorized(c, err.Error())
			}
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}

		c.Locals(adminLocal, admin)
		return c.Next()
	}
}

// GetAdmin returns the authenticated admin from Locals (nil on public routes).
func GetAdmin(c *fiber.Ctx) *models.Admin {
	if a, ok := c.Locals(adminLocal).(*models.Admin); ok {
		return a
	}
	return nil
}
