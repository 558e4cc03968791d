package auth

import (
	"aimlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// LoginRequest body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token the client presents on admin routes.
type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Login POST /api/auth/login — verify credentials, return a signed token.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, ErrEmailPasswordRequired.Error(), fiber.StatusBadRequest, nil)
	}
	admin, token, err := h.Service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case ErrEmailPasswordRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrInvalidCredentials:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return c.JSON(LoginResponse{Email: admin.Email, Token: token})
}
