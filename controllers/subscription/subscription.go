package subscriptionController

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListPlans returns the active subscription plans.
func ListPlans(c *fiber.Ctx) error {
	var plans []models.Plan
	err := database.Database.Db.
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("amount ASC").
		Find(&plans).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription plans.", plans)
}

// CreateOrder raises a payment order against the gateway for the chosen plan.
func CreateOrder(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedCreateOrder").(*struct {
		PlanID uint `json:"planId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order data!", nil)
	}

	db := database.Database.Db

	var plan models.Plan
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.PlanID, true, false).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	var business models.Business
	if err := db.Where("id = ? AND is_deleted = false", businessID).First(&business).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Business not found!", nil)
	}

	orderID := fmt.Sprintf("KAAMHAI-%d-%s", businessID, uuid.NewString()[:8])

	order := models.PaymentOrder{
		BusinessID: businessID,
		PlanID:     plan.ID,
		OrderID:    orderID,
		Amount:     plan.Amount,
		Status:     models.OrderStatusCreated,
	}
	if err := db.Create(&order).Error; err != nil {
		log.Printf("Failed to create payment order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	paymentClient := utils.NewPaymentClient(config.AppConfig)
	gatewayOrderID, sessionID, err := paymentClient.CreateOrder(orderID, plan.Amount, businessID, business.Mobile)
	if err != nil {
		log.Printf("Payment gateway order failed for %s: %v", orderID, err)
		db.Model(&order).Update("status", models.OrderStatusFailed)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment gateway error!", nil)
	}

	order.GatewayOrderID = gatewayOrderID
	order.SessionID = sessionID
	if err := db.Save(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	response := map[string]interface{}{
		"orderId":        order.OrderID,
		"gatewayOrderId": gatewayOrderID,
		"sessionId":      sessionID,
		"amount":         order.Amount,
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment order created.", response)
}

// PaymentWebhook handles gateway callbacks. The raw body signature is
// verified before any state change; a PAID order activates a subscription.
func PaymentWebhook(c *fiber.Ctx) error {
	rawBody := c.Body()
	timestamp := c.Get("x-webhook-timestamp")
	signature := c.Get("x-webhook-signature")

	if !utils.VerifyWebhookSignature(rawBody, timestamp, signature) {
		log.Printf("Webhook signature verification failed")
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid webhook signature!", nil)
	}

	var payload struct {
		Type string `json:"type"`
		Data struct {
			Order struct {
				OrderID string `json:"order_id"`
			} `json:"order"`
			Payment struct {
				PaymentStatus string `json:"payment_status"`
			} `json:"payment"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook payload!", nil)
	}

	db := database.Database.Db

	var order models.PaymentOrder
	if err := db.Where("order_id = ?", payload.Data.Order.OrderID).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	// Webhooks can be delivered more than once
	if order.Status == models.OrderStatusPaid {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Order already processed.", nil)
	}

	if payload.Data.Payment.PaymentStatus != "SUCCESS" {
		db.Model(&order).Update("status", models.OrderStatusFailed)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment failure recorded.", nil)
	}

	var plan models.Plan
	if err := db.First(&plan, order.PlanID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Plan not found for order!", nil)
	}

	startsAt := time.Now()
	expiresAt := startsAt.AddDate(0, 0, plan.DurationDays)

	// Stack on top of a current subscription instead of overlapping it
	var current models.Subscription
	err := db.Where("business_id = ? AND status = ? AND expires_at > ?", order.BusinessID, models.SubscriptionActive, startsAt).
		Order("expires_at DESC").
		First(&current).Error
	if err == nil && current.ExpiresAt != nil {
		startsAt = *current.ExpiresAt
		expiresAt = startsAt.AddDate(0, 0, plan.DurationDays)
	}

	subscription := models.Subscription{
		BusinessID: order.BusinessID,
		PlanID:     plan.ID,
		Status:     models.SubscriptionActive,
		StartsAt:   startsAt,
		ExpiresAt:  &expiresAt,
	}

	if err := db.Create(&subscription).Error; err != nil {
		log.Printf("Failed to activate subscription for order %s: %v", order.OrderID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate subscription!", nil)
	}

	db.Model(&order).Update("status", models.OrderStatusPaid)

	log.Printf("Subscription %d activated for business %d (order %s)", subscription.ID, order.BusinessID, order.OrderID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription activated.", nil)
}

// MySubscription returns the employer's current subscription state.
func MySubscription(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	var sub models.Subscription
	err := database.Database.Db.
		Where("business_id = ? AND status = ?", businessID, models.SubscriptionActive).
		Preload("Plan").
		Order("expires_at DESC").
		First(&sub).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active subscription!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active subscription.", sub)
}
