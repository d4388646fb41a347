package kycController_test

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
	kycRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/kycRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T, vendor http.HandlerFunc) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	srv := httptest.NewServer(vendor)
	t.Cleanup(srv.Close)

	config.AppConfig = &config.Config{
		JWTKey:          "test-secret",
		CashfreeBaseURL: srv.URL,
	}

	app := fiber.New()
	kycRoutes.SetupKycRoutes(app)
	return app, db
}

func seedEmployee(t *testing.T, db *gorm.DB, mobile string) models.Employee {
	t.Helper()
	employee := models.Employee{Name: "Ravi Kumar", Mobile: mobile}
	require.NoError(t, db.Create(&employee).Error)
	return employee
}

func authHeader(t *testing.T, employeeID uint) string {
	t.Helper()
	token, err := middleware.GenerateJWT(employeeID, models.RoleEmployee, "Ravi Kumar", "9876543210", 0)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func TestSendAadhaarOtpForwardsVendorResponse(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	app, db := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ref_id": 21637861, "status": "SUCCESS", "message": "OTP sent successfully"}`))
	})

	employee := seedEmployee(t, db, "9876543210")

	resp, envelope := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/send-otp", authHeader(t, employee.ID),
		fiber.Map{"aadhaarNumber": "123456789012"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/offline-aadhaar/otp", gotPath)
	assert.Equal(t, "123456789012", gotBody["aadhaar_number"])

	// ref_id goes back to the caller exactly as the vendor sent it
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(21637861), data["ref_id"])
	assert.Equal(t, "SUCCESS", data["status"])
}

func TestVerifyAadhaarOtpUnknownEmployee(t *testing.T) {
	vendorCalled := false
	app, db := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		vendorCalled = true
	})

	employee := seedEmployee(t, db, "9876543210")

	resp, _ := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/verify-otp", authHeader(t, employee.ID),
		fiber.Map{"referenceId": "21637861", "otp": "123456", "aadhaarNumber": "123456789012", "candidateId": 9999})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, vendorCalled, "vendor must not be contacted for an unknown employee")

	var docs int64
	db.Model(&models.EmployeeDocument{}).Count(&docs)
	assert.Zero(t, docs)
}

func TestVerifyAadhaarOtpVendorError(t *testing.T) {
	app, db := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "authentication failed", "code": "auth_failed"}`))
	})

	employee := seedEmployee(t, db, "9876543210")

	resp, envelope := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/verify-otp", authHeader(t, employee.ID),
		fiber.Map{"referenceId": "21637861", "otp": "123456", "aadhaarNumber": "123456789012"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// Vendor error body is surfaced so the client can see the reason
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "auth_failed", data["code"])

	var docs int64
	db.Model(&models.EmployeeDocument{}).Count(&docs)
	assert.Zero(t, docs)
}

func TestVerifyAadhaarOtpInvalidStatus(t *testing.T) {
	app, db := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ref_id": "21637861", "status": "INVALID", "message": "OTP is invalid", "code": "invalid_otp"}`))
	})

	employee := seedEmployee(t, db, "9876543210")

	resp, envelope := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/verify-otp", authHeader(t, employee.ID),
		fiber.Map{"referenceId": "21637861", "otp": "000000", "aadhaarNumber": "123456789012"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Vendor payload is returned unmodified on a failed verification
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "INVALID", data["status"])
	assert.Equal(t, "invalid_otp", data["code"])

	var docs int64
	db.Model(&models.EmployeeDocument{}).Count(&docs)
	assert.Zero(t, docs, "failed verification must not write document entries")

	var audits int64
	db.Model(&models.AadhaarVerification{}).Count(&audits)
	assert.Zero(t, audits)
}

func validVendorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{
		"ref_id": 21637861,
		"status": "VALID",
		"message": "Aadhaar verified",
		"name": "Ravi Kumar",
		"dob": "1992-04-11",
		"gender": "M",
		"care_of": "S/O Mohan Kumar",
		"address": "12 MG Road, Bengaluru",
		"year_of_birth": 1992,
		"mobile_hash": "a1b2c3",
		"split_address": {
			"country": "India",
			"dist": "Bengaluru",
			"state": "Karnataka",
			"pincode": 560001,
			"po": "MG Road",
			"street": "MG Road",
			"subdist": "Bengaluru North",
			"vtc": "Bengaluru"
		}
	}`))
}

func TestVerifyAadhaarOtpValidPersistsDocumentAndAudit(t *testing.T) {
	app, db := setupApp(t, validVendorHandler)

	employee := seedEmployee(t, db, "9876543210")

	resp, envelope := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/verify-otp", authHeader(t, employee.ID),
		fiber.Map{"referenceId": "21637861", "otp": "123456", "aadhaarNumber": "123456789012"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope["status"])

	var doc models.EmployeeDocument
	require.NoError(t, db.Where("employee_id = ? AND type = ?", employee.ID, models.DocumentAadhaarCard).First(&doc).Error)
	assert.True(t, doc.IsVerified)
	assert.True(t, doc.IsCompleted)
	assert.Equal(t, "123456789012", doc.AadhaarNumber)

	var audit models.AadhaarVerification
	require.NoError(t, db.Where("employee_id = ?", employee.ID).First(&audit).Error)
	assert.Equal(t, "21637861", audit.RefID)
	assert.Equal(t, "VALID", audit.Status)
	assert.Equal(t, "Ravi Kumar", audit.Name)
	assert.Equal(t, "560001", audit.SplitAddr.Pincode)
	assert.NotEmpty(t, audit.RawPayload)
}

func TestVerifyAadhaarOtpRepeatKeepsSingleDocument(t *testing.T) {
	app, db := setupApp(t, validVendorHandler)

	employee := seedEmployee(t, db, "9876543210")

	body := fiber.Map{"referenceId": "21637861", "otp": "123456", "aadhaarNumber": "123456789012"}
	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/verify-otp", authHeader(t, employee.ID), body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var docs int64
	db.Model(&models.EmployeeDocument{}).
		Where("employee_id = ? AND type = ?", employee.ID, models.DocumentAadhaarCard).
		Count(&docs)
	assert.Equal(t, int64(1), docs, "repeated verification must upsert, not duplicate")

	// Audit trail is append-only, one record per attempt
	var audits int64
	db.Model(&models.AadhaarVerification{}).Where("employee_id = ?", employee.ID).Count(&audits)
	assert.Equal(t, int64(3), audits)
}

func TestVerifyAadhaarOtpAuditFailureDoesNotAffectResponse(t *testing.T) {
	app, db := setupApp(t, validVendorHandler)

	employee := seedEmployee(t, db, "9876543210")

	// Break only the audit table; document persistence must still succeed
	require.NoError(t, db.Migrator().DropTable(&models.AadhaarVerification{}))

	resp, envelope := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/verify-otp", authHeader(t, employee.ID),
		fiber.Map{"referenceId": "21637861", "otp": "123456", "aadhaarNumber": "123456789012"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope["status"])

	var doc models.EmployeeDocument
	require.NoError(t, db.Where("employee_id = ? AND type = ?", employee.ID, models.DocumentAadhaarCard).First(&doc).Error)
	assert.True(t, doc.IsVerified)
}

func TestVerifyAadhaarOtpEmployerDrivesCandidate(t *testing.T) {
	app, db := setupApp(t, validVendorHandler)

	candidate := seedEmployee(t, db, "9876543210")

	token, err := middleware.GenerateJWT(42, models.RoleEmployer, "Acme HR", "9000000000", 7)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPost, "/kyc/aadhaar/verify-otp", "Bearer "+token,
		fiber.Map{"referenceId": "21637861", "otp": "123456", "aadhaarNumber": "123456789012", "candidateId": candidate.ID})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc models.EmployeeDocument
	require.NoError(t, db.Where("employee_id = ? AND type = ?", candidate.ID, models.DocumentAadhaarCard).First(&doc).Error)
	assert.True(t, doc.IsCompleted)
}

func TestGetVerificationStatus(t *testing.T) {
	app, db := setupApp(t, validVendorHandler)

	employee := seedEmployee(t, db, "9876543210")

	resp, envelope := doJSON(t, app, http.MethodGet, "/kyc/status", authHeader(t, employee.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, false, data["isCompleted"])

	// Complete all four inputs and the aggregate flips
	require.NoError(t, db.Model(&employee).Updates(map[string]interface{}{
		"personal_is_completed":     true,
		"professional_is_completed": true,
	}).Error)
	require.NoError(t, db.Create(&models.EmployeeDocument{
		EmployeeID: employee.ID, Type: models.DocumentAadhaarCard, IsCompleted: true,
	}).Error)
	require.NoError(t, db.Create(&models.EmployeeDocument{
		EmployeeID: employee.ID, Type: models.DocumentFacePhoto, IsCompleted: true,
	}).Error)

	_, envelope = doJSON(t, app, http.MethodGet, "/kyc/status", authHeader(t, employee.ID), nil)
	data = envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["isCompleted"])
}
