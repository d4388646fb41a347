package subscriptionController_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	subscriptionRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/subscriptionRoutes"

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
		JWTKey:               "test-secret",
		PaymentWebhookSecret: "whsec_test",
	}

	app := fiber.New()
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	return app, db
}

func seedOrder(t *testing.T, db *gorm.DB) (models.Plan, models.PaymentOrder) {
	t.Helper()

	plan := models.Plan{Name: "Starter", Amount: 49900, DurationDays: 30, MaxEmployees: 10, IsActive: true}
	require.NoError(t, db.Create(&plan).Error)

	order := models.PaymentOrder{
		BusinessID: 7,
		PlanID:     plan.ID,
		OrderID:    "KAAMHAI-7-abc12345",
		Amount:     plan.Amount,
		Status:     models.OrderStatusCreated,
	}
	require.NoError(t, db.Create(&order).Error)
	return plan, order
}

func postWebhook(t *testing.T, app *fiber.App, body []byte, sign bool) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/subscription/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	timestamp := "1724800000"
	req.Header.Set("x-webhook-timestamp", timestamp)
	if sign {
		mac := hmac.New(sha256.New, []byte("whsec_test"))
		mac.Write([]byte(timestamp))
		mac.Write(body)
		req.Header.Set("x-webhook-signature", base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	} else {
		req.Header.Set("x-webhook-signature", "bogus")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPaymentWebhookRejectsBadSignature(t *testing.T) {
	app, db := setupApp(t)
	_, order := seedOrder(t, db)

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"` + order.OrderID + `"},"payment":{"payment_status":"SUCCESS"}}}`)
	resp := postWebhook(t, app, body, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var subs int64
	db.Model(&models.Subscription{}).Count(&subs)
	assert.Zero(t, subs, "unsigned webhook must not activate anything")
}

func TestPaymentWebhookActivatesSubscription(t *testing.T) {
	app, db := setupApp(t)
	plan, order := seedOrder(t, db)

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"` + order.OrderID + `"},"payment":{"payment_status":"SUCCESS"}}}`)
	resp := postWebhook(t, app, body, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.PaymentOrder
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)

	var sub models.Subscription
	require.NoError(t, db.Where("business_id = ?", order.BusinessID).First(&sub).Error)
	assert.Equal(t, models.SubscriptionActive, sub.Status)
	assert.Equal(t, plan.ID, sub.PlanID)
	require.NotNil(t, sub.ExpiresAt)
	assert.WithinDuration(t, sub.StartsAt.AddDate(0, 0, plan.DurationDays), *sub.ExpiresAt, time.Second)
}

func TestPaymentWebhookIsIdempotent(t *testing.T) {
	app, db := setupApp(t)
	_, order := seedOrder(t, db)

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"` + order.OrderID + `"},"payment":{"payment_status":"SUCCESS"}}}`)
	for i := 0; i < 2; i++ {
		resp := postWebhook(t, app, body, true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var subs int64
	db.Model(&models.Subscription{}).Where("business_id = ?", order.BusinessID).Count(&subs)
	assert.Equal(t, int64(1), subs, "repeated delivery must not create a second subscription")
}

func TestPaymentWebhookFailureRecorded(t *testing.T) {
	app, db := setupApp(t)
	_, order := seedOrder(t, db)

	body := []byte(`{"type":"PAYMENT_FAILED_WEBHOOK","data":{"order":{"order_id":"` + order.OrderID + `"},"payment":{"payment_status":"FAILED"}}}`)
	resp := postWebhook(t, app, body, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.PaymentOrder
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusFailed, updated.Status)

	var subs int64
	db.Model(&models.Subscription{}).Count(&subs)
	assert.Zero(t, subs)
}
