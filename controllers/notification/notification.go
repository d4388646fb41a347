package notificationController

import (
	"log"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// RegisterDevice stores an FCM token for the authenticated account.
// Re-registering an existing token reassigns it to the caller.
func RegisterDevice(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid account ID!", nil)
	}
	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedRegisterDevice").(*struct {
		Token    string `json:"token"`
		Platform string `json:"platform"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid device data!", nil)
	}

	device := models.DeviceToken{
		Token:    reqData.Token,
		Platform: reqData.Platform,
	}
	if device.Platform == "" {
		device.Platform = "android"
	}
	if role == models.RoleEmployer {
		businessID, _ := c.Locals("businessId").(uint)
		device.BusinessID = businessID
	} else {
		device.EmployeeID = accountID
	}

	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"employee_id": device.EmployeeID,
			"business_id": device.BusinessID,
			"platform":    device.Platform,
			"is_deleted":  false,
		}),
	}).Create(&device).Error
	if err != nil {
		log.Printf("Failed to register device token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register device!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Device registered.", nil)
}

// ListNotifications returns the caller's notifications, newest first.
func ListNotifications(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid account ID!", nil)
	}
	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db
	query := db.Model(&models.Notification{}).Where("is_deleted = false")
	if role == models.RoleEmployer {
		businessID, _ := c.Locals("businessId").(uint)
		query = query.Where("business_id = ?", businessID)
	} else {
		query = query.Where("employee_id = ?", accountID)
	}

	var notifications []models.Notification
	var total int64

	query.Count(&total)
	if err := query.Order("created_at DESC").Offset(offset).Limit(*reqData.Limit).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	response := map[string]interface{}{
		"notifications": notifications,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications list.", response)
}

// MarkNotificationRead flags one of the caller's notifications as read.
func MarkNotificationRead(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid account ID!", nil)
	}
	role, _ := c.Locals("role").(string)

	notificationID, err := c.ParamsInt("id")
	if err != nil || notificationID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification ID!", nil)
	}

	db := database.Database.Db
	query := db.Model(&models.Notification{}).Where("id = ? AND is_deleted = false", notificationID)
	if role == models.RoleEmployer {
		businessID, _ := c.Locals("businessId").(uint)
		query = query.Where("business_id = ?", businessID)
	} else {
		query = query.Where("employee_id = ?", accountID)
	}

	result := query.Update("is_read", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked read.", nil)
}
