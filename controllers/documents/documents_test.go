package documentController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	documentRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/documentRoutes"

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

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		UploadDir: t.TempDir(),
	}

	app := fiber.New()
	documentRoutes.SetupDocumentRoutes(app)
	return app, db
}

func seedEmployee(t *testing.T, db *gorm.DB) (models.Employee, string) {
	t.Helper()

	employee := models.Employee{Name: "Ravi Kumar", Mobile: "9876543210"}
	require.NoError(t, db.Create(&employee).Error)
	require.NoError(t, db.Create(&models.Permission{
		AccountID: employee.ID, Role: models.RoleEmployee, Permission: "upload-document",
	}).Error)

	token, err := middleware.GenerateJWT(employee.ID, models.RoleEmployee, employee.Name, employee.Mobile, 0)
	require.NoError(t, err)
	return employee, "Bearer " + token
}

func multipartUpload(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func doUpload(t *testing.T, app *fiber.App, method, path, auth string, body *bytes.Buffer, contentType string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", auth)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func TestUploadDocumentMarksCompleted(t *testing.T) {
	app, db := setupApp(t)
	employee, auth := seedEmployee(t, db)

	body, contentType := multipartUpload(t,
		map[string]string{"documentType": models.DocumentFacePhoto},
		map[string]string{"file": "selfie.jpg"})

	resp, _ := doUpload(t, app, http.MethodPost, "/document/upload", auth, body, contentType)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc models.EmployeeDocument
	require.NoError(t, db.Where("employee_id = ? AND type = ?", employee.ID, models.DocumentFacePhoto).First(&doc).Error)
	assert.True(t, doc.IsCompleted)
	assert.False(t, doc.IsVerified, "upload alone must not mark a document verified")
	assert.NotEmpty(t, doc.Front.URI)
}

func TestUploadDocumentRejectsUnknownType(t *testing.T) {
	app, db := setupApp(t)
	_, auth := seedEmployee(t, db)

	body, contentType := multipartUpload(t,
		map[string]string{"documentType": "passport"},
		map[string]string{"file": "passport.jpg"})

	resp, _ := doUpload(t, app, http.MethodPost, "/document/upload", auth, body, contentType)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadDocumentPreservesVerification(t *testing.T) {
	app, db := setupApp(t)
	employee, auth := seedEmployee(t, db)

	// Aadhaar already verified through the OTP flow
	require.NoError(t, db.Create(&models.EmployeeDocument{
		EmployeeID:    employee.ID,
		Type:          models.DocumentAadhaarCard,
		IsVerified:    true,
		IsCompleted:   true,
		AadhaarNumber: "123456789012",
	}).Error)

	body, contentType := multipartUpload(t,
		map[string]string{"documentType": models.DocumentAadhaarCard},
		map[string]string{"file": "aadhaar.jpg"})

	resp, _ := doUpload(t, app, http.MethodPost, "/document/upload", auth, body, contentType)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc models.EmployeeDocument
	require.NoError(t, db.Where("employee_id = ? AND type = ?", employee.ID, models.DocumentAadhaarCard).First(&doc).Error)
	assert.True(t, doc.IsVerified, "file upload must not reset the verification flag")
	assert.Equal(t, "123456789012", doc.AadhaarNumber)
	assert.NotEmpty(t, doc.Front.URI)

	var count int64
	db.Model(&models.EmployeeDocument{}).Where("employee_id = ?", employee.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestReplaceDocumentStoresBothSides(t *testing.T) {
	app, db := setupApp(t)
	employee, auth := seedEmployee(t, db)

	body, contentType := multipartUpload(t,
		map[string]string{"documentType": models.DocumentPanCard},
		map[string]string{"front": "pan-front.jpg", "back": "pan-back.jpg"})

	resp, _ := doUpload(t, app, http.MethodPut, "/document/replace", auth, body, contentType)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc models.EmployeeDocument
	require.NoError(t, db.Where("employee_id = ? AND type = ?", employee.ID, models.DocumentPanCard).First(&doc).Error)
	assert.NotEmpty(t, doc.Front.URI)
	assert.NotEmpty(t, doc.Back.URI)
}

func TestReplaceDocumentRequiresASide(t *testing.T) {
	app, db := setupApp(t)
	_, auth := seedEmployee(t, db)

	body, contentType := multipartUpload(t,
		map[string]string{"documentType": models.DocumentPanCard}, nil)

	resp, _ := doUpload(t, app, http.MethodPut, "/document/replace", auth, body, contentType)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
