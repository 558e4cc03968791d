package dashboard

import (
	"aimlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GetStats GET /api/dashboard/stats (admin)
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.Service.Collect(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return c.JSON(stats)
}
