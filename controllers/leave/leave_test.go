package leaveController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	leaveRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/leaveRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	leaveRoutes.SetupLeaveRoutes(app)
	return app, db
}

func seedEmployeeWithPermissions(t *testing.T, db *gorm.DB, businessID uint) (models.Employee, string) {
	t.Helper()

	employee := models.Employee{BusinessID: businessID, Name: "Ravi Kumar", Mobile: "9876543210"}
	require.NoError(t, db.Create(&employee).Error)
	require.NoError(t, db.Create(&models.Permission{
		AccountID: employee.ID, Role: models.RoleEmployee, Permission: "apply-leave",
	}).Error)

	token, err := middleware.GenerateJWT(employee.ID, models.RoleEmployee, employee.Name, employee.Mobile, 0)
	require.NoError(t, err)
	return employee, "Bearer " + token
}

func employerToken(t *testing.T, db *gorm.DB, businessID uint) string {
	t.Helper()
	require.NoError(t, db.Create(&models.Permission{
		AccountID: businessID, Role: models.RoleEmployer, Permission: "review-leave",
	}).Error)
	token, err := middleware.GenerateJWT(businessID, models.RoleEmployer, "Acme HR", "9000000000", businessID)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func TestApplyLeaveCreatesPendingRequest(t *testing.T) {
	app, db := setupApp(t)
	employee, auth := seedEmployeeWithPermissions(t, db, 7)

	resp, _ := doJSON(t, app, http.MethodPost, "/leave/apply", auth, fiber.Map{
		"leaveType": models.LeaveTypeCasual,
		"fromDate":  "2026-09-07",
		"toDate":    "2026-09-09",
		"reason":    "family function",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var leave models.LeaveRequest
	require.NoError(t, db.Where("employee_id = ?", employee.ID).First(&leave).Error)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
	assert.Equal(t, 3, leave.Days)
	assert.Equal(t, uint(7), leave.BusinessID)
}

func TestApplyLeaveRejectsOverlap(t *testing.T) {
	app, db := setupApp(t)
	_, auth := seedEmployeeWithPermissions(t, db, 7)

	body := fiber.Map{
		"leaveType": models.LeaveTypeSick,
		"fromDate":  "2026-09-07",
		"toDate":    "2026-09-09",
		"reason":    "fever",
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/leave/apply", auth, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Overlapping window, even for a different leave type
	resp, _ = doJSON(t, app, http.MethodPost, "/leave/apply", auth, fiber.Map{
		"leaveType": models.LeaveTypeCasual,
		"fromDate":  "2026-09-09",
		"toDate":    "2026-09-10",
		"reason":    "travel",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestApplyLeaveRejectsInvertedRange(t *testing.T) {
	app, db := setupApp(t)
	_, auth := seedEmployeeWithPermissions(t, db, 7)

	resp, _ := doJSON(t, app, http.MethodPost, "/leave/apply", auth, fiber.Map{
		"leaveType": models.LeaveTypeCasual,
		"fromDate":  "2026-09-09",
		"toDate":    "2026-09-07",
		"reason":    "typo",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReviewLeaveApproval(t *testing.T) {
	app, db := setupApp(t)
	employee, auth := seedEmployeeWithPermissions(t, db, 7)

	resp, _ := doJSON(t, app, http.MethodPost, "/leave/apply", auth, fiber.Map{
		"leaveType": models.LeaveTypeEarned,
		"fromDate":  "2026-09-07",
		"toDate":    "2026-09-08",
		"reason":    "vacation",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var leave models.LeaveRequest
	require.NoError(t, db.Where("employee_id = ?", employee.ID).First(&leave).Error)

	reviewer := employerToken(t, db, 7)
	resp, _ = doJSON(t, app, http.MethodPatch, "/leave/review", reviewer, fiber.Map{
		"leaveId":    leave.ID,
		"status":     models.LeaveStatusApproved,
		"reviewNote": "enjoy",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&leave, leave.ID).Error)
	assert.Equal(t, models.LeaveStatusApproved, leave.Status)
	assert.NotNil(t, leave.ReviewedAt)

	// A second review of the same request is rejected
	resp, _ = doJSON(t, app, http.MethodPatch, "/leave/review", reviewer, fiber.Map{
		"leaveId": leave.ID,
		"status":  models.LeaveStatusRejected,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestReviewLeaveScopedToBusiness(t *testing.T) {
	app, db := setupApp(t)
	employee, auth := seedEmployeeWithPermissions(t, db, 7)

	resp, _ := doJSON(t, app, http.MethodPost, "/leave/apply", auth, fiber.Map{
		"leaveType": models.LeaveTypeCasual,
		"fromDate":  "2026-09-07",
		"toDate":    "2026-09-07",
		"reason":    "errand",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var leave models.LeaveRequest
	require.NoError(t, db.Where("employee_id = ?", employee.ID).First(&leave).Error)

	// Employer of a different business cannot see the request
	otherReviewer := employerToken(t, db, 99)
	resp, _ = doJSON(t, app, http.MethodPatch, "/leave/review", otherReviewer, fiber.Map{
		"leaveId": leave.ID,
		"status":  models.LeaveStatusApproved,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMonthlySummaryClampsToMonth(t *testing.T) {
	app, db := setupApp(t)
	employee, auth := seedEmployeeWithPermissions(t, db, 7)

	// Spans August into September, only two September days should count
	resp, _ := doJSON(t, app, http.MethodPost, "/leave/apply", auth, fiber.Map{
		"leaveType": models.LeaveTypeUnpaid,
		"fromDate":  "2026-08-30",
		"toDate":    "2026-09-02",
		"reason":    "travel",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, db.Model(&models.LeaveRequest{}).
		Where("employee_id = ?", employee.ID).
		Update("status", models.LeaveStatusApproved).Error)

	_, envelope := doJSON(t, app, http.MethodGet, "/leave/summary?month=2026-09", auth, nil)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "2026-09", data["month"])
	assert.Equal(t, float64(2), data["totalDays"])

	byType := data["byType"].(map[string]interface{})
	assert.Equal(t, float64(2), byType[models.LeaveTypeUnpaid])
}
