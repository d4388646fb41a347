package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionActive  = "ACTIVE"
	SubscriptionExpired = "EXPIRED"

	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

type Plan struct {
	gorm.Model
	Name         string `gorm:"unique;not null" json:"name"`
	Amount       uint   `gorm:"not null" json:"amount"` // in paise
	DurationDays int    `gorm:"not null" json:"durationDays"`
	MaxEmployees int    `gorm:"default:10" json:"maxEmployees"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}

type Subscription struct {
	gorm.Model
	BusinessID   uint       `gorm:"index;not null" json:"businessId"`
	PlanID       uint       `gorm:"not null" json:"planId"`
	Plan         Plan       `gorm:"foreignKey:PlanID" json:"plan"`
	Status       string     `gorm:"size:20;default:'ACTIVE'" json:"status"`
	StartsAt     time.Time  `gorm:"not null" json:"startsAt"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	ReminderSent bool       `gorm:"default:false" json:"-"`
}

// PaymentOrder tracks one order raised against the payment gateway. The
// gateway webhook flips Status to PAID and activates the subscription.
type PaymentOrder struct {
	gorm.Model
	BusinessID     uint   `gorm:"index;not null" json:"businessId"`
	PlanID         uint   `gorm:"not null" json:"planId"`
	OrderID        string `gorm:"unique;not null" json:"orderId"`
	GatewayOrderID string `gorm:"default:''" json:"gatewayOrderId"`
	SessionID      string `gorm:"default:''" json:"sessionId"`
	Amount         uint   `gorm:"not null" json:"amount"`
	Status         string `gorm:"size:20;default:'CREATED'" json:"status"`
}
