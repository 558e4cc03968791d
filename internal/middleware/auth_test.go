package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"aimlink-backend/internal/auth"
	"aimlink-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupGuardTest(t *testing.T) (*fiber.App, *auth.Service) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	svc := &auth.Service{DB: db, JWTSecret: "test-secret"}
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@aimlink.com", "pass123!"))

	app := fiber.New()
	app.Get("/guarded", RequireAdmin(svc), func(c *fiber.Ctx) error {
		admin := GetAdmin(c)
		require.NotNil(t, admin)
		return c.JSON(fiber.Map{"email": admin.Email})
	})
	return app, svc
}

func request(t *testing.T, app *fiber.App, authHeader string) int {
	req := httptest.NewRequest("GET", "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	app, _ := setupGuardTest(t)
	token, err := auth.IssueToken("test-secret", "admin@aimlink.com")
	require.NoError(t, err)
	assert.Equal(t, 200, request(t, app, "Bearer "+token))
}

func TestRequireAdmin_MissingOrWrongScheme(t *testing.T) {
	app, _ := setupGuardTest(t)
	assert.Equal(t, 401, request(t, app, ""))
	assert.Equal(t, 401, request(t, app, "Basic dXNlcjpwYXNz"))
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	app, _ := setupGuardTest(t)
	token, err := auth.IssueTokenAt("test-secret", "admin@aimlink.com", time.Now().Add(-auth.TokenTTL-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 401, request(t, app, "Bearer "+token))
}

func TestRequireAdmin_UnknownAdmin(t *testing.T) {
	app, _ := setupGuardTest(t)
	// Valid signature but the claimed admin does not exist.
	token, err := auth.IssueToken("test-secret", "ghost@aimlink.com")
	require.NoError(t, err)
	assert.Equal(t, 401, request(t, app, "Bearer "+token))
}
