package app

import (
	"aimlink-backend/internal/auth"
	"aimlink-backend/internal/config"
	"aimlink-backend/internal/dashboard"
	"aimlink-backend/internal/health"
	"aimlink-backend/internal/leads"
	"aimlink-backend/internal/middleware"
	"aimlink-backend/internal/properties"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. rdb may be nil (health marker disabled).
func CreateApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS())
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	authService := &auth.Service{DB: db, JWTSecret: cfg.JWTSecret}
	propertyService := &properties.Service{DB: db}
	leadService := &leads.Service{DB: db, Properties: propertyService}

	requireAdmin := middleware.RequireAdmin(authService)
	api := app.Group("/api")

	authHandlers := &auth.Handlers{Service: authService}
	api.Post("/auth/login", authHandlers.Login)

	// Property reads are public; mutations are admin-only.
	propertyHandlers := &properties.Handlers{Service: propertyService}
	api.Get("/properties", propertyHandlers.GetProperties)
	api.Get("/properties/:property_id", propertyHandlers.GetProperty)
	api.Post("/properties", requireAdmin, propertyHandlers.CreateProperty)
	api.Put("/properties/:property_id", requireAdmin, propertyHandlers.UpdateProperty)
	api.Delete("/properties/:property_id", requireAdmin, propertyHandlers.DeleteProperty)

	// Lead creation is public (buyer inquiries); reads and status updates
	// expose PII and are admin-only.
	leadHandlers := &leads.Handlers{Service: leadService}
	api.Post("/leads", leadHandlers.CreateLead)
	api.Get("/leads", requireAdmin, leadHandlers.GetLeads)
	api.Put("/leads/:lead_id", requireAdmin, leadHandlers.UpdateLead)

	dashboardHandlers := &dashboard.Handlers{Service: &dashboard.Service{DB: db}}
	api.Get("/dashboard/stats", requireAdmin, dashboardHandlers.GetStats)

	healthHandlers := &health.Handlers{Rdb: rdb, DB: dbPinger(db)}
	app.Get("/health", healthHandlers.Health)

	return app
}

func dbPinger(db *gorm.DB) health.DBPinger {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil
	}
	return sqlDB
}
