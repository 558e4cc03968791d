package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"aimlink-backend/internal/auth"
	"aimlink-backend/internal/config"
	"aimlink-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAppTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Property{}, &models.Lead{}))

	cfg := &config.Config{Env: "test", JWTSecret: "test-secret"}
	svc := &auth.Service{DB: db, JWTSecret: cfg.JWTSecret}
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@aimlink.com", "pass123!"))

	return CreateApp(cfg, db, nil), db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	_ = json.Unmarshal(raw, &parsed)
	return resp, parsed
}

func login(t *testing.T, app *fiber.App) string {
	resp, body := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "admin@aimlink.com",
		"password": "pass123!",
	})
	require.Equal(t, 200, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "admin@aimlink.com", body["email"])
	return token
}

func TestLogin_BadCredentials(t *testing.T) {
	app, _ := setupAppTest(t)
	resp, _ := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "admin@aimlink.com",
		"password": "wrong",
	})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthGate_NoMutationWithoutToken(t *testing.T) {
	app, db := setupAppTest(t)

	body := map[string]interface{}{
		"title":           "Apartment",
		"area":            "Beirut",
		"location_detail": "Hamra",
		"price_usd":       100000,
		"property_type":   "Apartment",
		"size_sqm":        100,
		"description":     "desc",
	}

	// Missing, malformed, and wrongly-signed tokens all 401.
	resp, _ := doJSON(t, app, "POST", "/api/properties", "", body)
	assert.Equal(t, 401, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", "/api/properties", "garbage", body)
	assert.Equal(t, 401, resp.StatusCode)
	forged, err := auth.IssueToken("other-secret", "admin@aimlink.com")
	require.NoError(t, err)
	resp, _ = doJSON(t, app, "POST", "/api/properties", forged, body)
	assert.Equal(t, 401, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Property{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Lead reads are guarded too.
	resp, _ = doJSON(t, app, "GET", "/api/leads", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/api/dashboard/stats", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthGate_DeletedAdmin(t *testing.T) {
	app, db := setupAppTest(t)
	token := login(t, app)

	require.NoError(t, db.Where("email = ?", "admin@aimlink.com").Delete(&models.Admin{}).Error)

	resp, _ := doJSON(t, app, "GET", "/api/dashboard/stats", token, nil)
	assert.Equal(t, 401, resp.StatusCode)
}

// Full scenario: login, create, filter, mark sold, delete.
func TestPropertyLifecycle(t *testing.T) {
	app, _ := setupAppTest(t)
	token := login(t, app)

	resp, created := doJSON(t, app, "POST", "/api/properties", token, map[string]interface{}{
		"title":           "Sea-view apartment",
		"area":            "Beirut",
		"location_detail": "Ain El Mraiseh",
		"price_usd":       450000,
		"property_type":   "Apartment",
		"size_sqm":        180,
		"description":     "Three bedrooms.",
		"images":          []string{"aGVsbG8="},
	})
	require.Equal(t, 200, resp.StatusCode)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "active", created["status"])

	// Shows up in a filtered public listing.
	req := httptest.NewRequest("GET", "/api/properties?area=Beirut&min_price=400000", nil)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, listResp.StatusCode)
	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])

	// Mark sold.
	resp, updated := doJSON(t, app, "PUT", "/api/properties/"+id, token, map[string]string{"status": "sold"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "sold", updated["status"])

	resp, got := doJSON(t, app, "GET", "/api/properties/"+id, "", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "sold", got["status"])

	// Delete, then 404.
	resp, _ = doJSON(t, app, "DELETE", "/api/properties/"+id, token, nil)
	require.Equal(t, 200, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/api/properties/"+id, "", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLeadLifecycle(t *testing.T) {
	app, _ := setupAppTest(t)
	token := login(t, app)

	resp, created := doJSON(t, app, "POST", "/api/properties", token, map[string]interface{}{
		"title":           "Villa",
		"area":            "Mount Lebanon",
		"location_detail": "Broummana",
		"price_usd":       900000,
		"property_type":   "Villa",
		"size_sqm":        400,
		"description":     "Garden and pool.",
	})
	require.Equal(t, 200, resp.StatusCode)
	propertyID, _ := created["id"].(string)

	// Public lead submission, no token.
	resp, lead := doJSON(t, app, "POST", "/api/leads", "", map[string]string{
		"property_id": propertyID,
		"name":        "Karim",
		"phone":       "+961 3 123 456",
		"message":     "Interested in a visit.",
	})
	require.Equal(t, 200, resp.StatusCode)
	leadID, _ := lead["id"].(string)
	require.NotEmpty(t, leadID)
	assert.Equal(t, "pending", lead["status"])

	// Admin-only list and status update.
	resp, _ = doJSON(t, app, "GET", "/api/leads?status=pending", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp, updated := doJSON(t, app, "PUT", "/api/leads/"+leadID, token, map[string]string{"status": "contacted"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "contacted", updated["status"])

	// Stats reflect both collections.
	resp, stats := doJSON(t, app, "GET", "/api/dashboard/stats", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(1), stats["total_properties"])
	assert.Equal(t, float64(1), stats["total_leads"])
	assert.Equal(t, float64(0), stats["pending_leads"])
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := setupAppTest(t)
	resp, report := doJSON(t, app, "GET", "/health", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	// sqlite-backed DB pings fine; no Redis configured in tests.
	deps, _ := report["dependencies"].(map[string]interface{})
	require.NotNil(t, deps)
	redisDep, _ := deps["redis"].(map[string]interface{})
	assert.Equal(t, "disconnected", redisDep["status"])
}
