package utils

import (
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/robfig/cron/v3"
)

// InitializeSubscriptionScheduler sets up the subscription expiry scheduler
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at 9 AM to check expiring subscriptions
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		ProcessExpiringSubscriptions()
		ExpireSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at 9 AM")
}

// ProcessExpiringSubscriptions sends reminder emails for subscriptions expiring in 2 days
func ProcessExpiringSubscriptions() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var expiring []models.Subscription
	if err := db.
		Where("status = ? AND reminder_sent = false AND expires_at IS NOT NULL", models.SubscriptionActive).
		Where("expires_at BETWEEN ? AND ?", now, twoDaysFromNow).
		Preload("Plan").
		Find(&expiring).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expiring subscriptions: %v", err)
		return
	}

	log.Printf("[SUBSCRIPTION-SCHEDULER] Found %d subscriptions expiring soon", len(expiring))

	for _, sub := range expiring {
		var business models.Business
		if err := db.Where("id = ?", sub.BusinessID).First(&business).Error; err != nil {
			log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching business %d: %v", sub.BusinessID, err)
			continue
		}

		SendSubscriptionExpiryReminder(business.Email, business.Name, sub.Plan.Name, sub.ExpiresAt)

		db.Model(&sub).Update("reminder_sent", true)
		log.Printf("[SUBSCRIPTION-SCHEDULER] Sent expiry reminder for subscription %d to %s", sub.ID, business.Email)
	}
}

// ExpireSubscriptions marks expired subscriptions as EXPIRED
func ExpireSubscriptions() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Subscription{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.SubscriptionActive, now).
		Updates(map[string]interface{}{"status": models.SubscriptionExpired})

	if result.Error != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error expiring subscriptions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Expired %d subscriptions", result.RowsAffected)

		var expired []models.Subscription
		db.Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.SubscriptionExpired, now).
			Where("updated_at > ?", now.Add(-time.Hour)). // Only recently expired
			Preload("Plan").
			Find(&expired)

		for _, sub := range expired {
			var business models.Business
			if err := db.Where("id = ?", sub.BusinessID).First(&business).Error; err == nil {
				SendSubscriptionExpiredEmail(business.Email, business.Name, sub.Plan.Name)
			}
		}
	}
}
