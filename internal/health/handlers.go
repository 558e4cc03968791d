package health

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Rdb *redis.Client
	DB  DBPinger
}

// Health GET /health — dependency + traffic report (public, not marked).
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(CollectHealth(c.Context(), h.Rdb, h.DB))
}
