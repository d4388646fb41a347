package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newProtectedApp(t *testing.T, handlers ...fiber.Handler) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	chain := append([]fiber.Handler{middleware.JWTMiddleware}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"accountId":  c.Locals("accountId"),
			"role":       c.Locals("role"),
			"businessId": c.Locals("businessId"),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func request(t *testing.T, app *fiber.App, auth string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestJWTRoundTrip(t *testing.T) {
	app := newProtectedApp(t)

	token, err := middleware.GenerateJWT(42, models.RoleEmployer, "Asha", "9876543210", 7)
	require.NoError(t, err)

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTMissingHeader(t *testing.T) {
	app := newProtectedApp(t)

	resp := request(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMalformedHeader(t *testing.T) {
	app := newProtectedApp(t)

	resp := request(t, app, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "other-secret"}
	token, err := middleware.GenerateJWT(1, models.RoleEmployee, "Ravi", "9000000001", 0)
	require.NoError(t, err)

	app := newProtectedApp(t) // resets JWTKey to test-secret
	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := newProtectedApp(t, middleware.RequireRole(models.RoleAdmin))

	adminToken, err := middleware.GenerateJWT(1, models.RoleAdmin, "Admin", "9000000002", 0)
	require.NoError(t, err)
	resp := request(t, app, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	employeeToken, err := middleware.GenerateJWT(2, models.RoleEmployee, "Ravi", "9000000003", 0)
	require.NoError(t, err)
	resp = request(t, app, "Bearer "+employeeToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCheckPermissionMiddleware(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	require.NoError(t, db.Create(&models.Permission{
		AccountID: 10, Role: models.RoleEmployee, Permission: "apply-leave",
	}).Error)

	app := newProtectedApp(t, middleware.CheckPermissionMiddleware("apply-leave"))

	granted, err := middleware.GenerateJWT(10, models.RoleEmployee, "Ravi", "9000000004", 0)
	require.NoError(t, err)
	resp := request(t, app, "Bearer "+granted)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	denied, err := middleware.GenerateJWT(11, models.RoleEmployee, "Kiran", "9000000005", 0)
	require.NoError(t, err)
	resp = request(t, app, "Bearer "+denied)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
