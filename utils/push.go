package utils

import (
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

const fcmSendURL = "https://fcm.googleapis.com/fcm/send"

// SendPushToEmployee stores a notification row and fans it out to every
// registered device of the employee. Delivery is best-effort; failures are
// logged, the stored notification remains the source of truth.
func SendPushToEmployee(db *gorm.DB, employeeID uint, title, body string) {
	notification := models.Notification{
		EmployeeID: employeeID,
		Title:      title,
		Body:       body,
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("[PUSH] Failed to store notification for employee %d: %v", employeeID, err)
		return
	}

	var tokens []models.DeviceToken
	if err := db.Where("employee_id = ? AND is_deleted = false", employeeID).Find(&tokens).Error; err != nil {
		log.Printf("[PUSH] Failed to fetch device tokens for employee %d: %v", employeeID, err)
		return
	}

	for _, t := range tokens {
		go sendFcmMessage(t.Token, title, body)
	}
}

func sendFcmMessage(token, title, body string) {
	cfg := config.AppConfig
	if cfg.FcmServerKey == "" {
		log.Printf("[PUSH] FCM not configured, skipping push %q", title)
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	payload := map[string]interface{}{
		"to": token,
		"notification": map[string]string{
			"title": title,
			"body":  body,
		},
	}

	resp, err := client.R().
		SetHeader("Authorization", "key="+cfg.FcmServerKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fcmSendURL)
	if err != nil {
		log.Printf("[PUSH] FCM request failed: %v", err)
		return
	}

	if resp.StatusCode() != 200 {
		log.Printf("[PUSH] FCM rejected message: %d %s", resp.StatusCode(), resp.String())
	}
}
