package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AdvanceStatusPending  = "PENDING"
	AdvanceStatusApproved = "APPROVED"
	AdvanceStatusRejected = "REJECTED"
	AdvanceStatusPaid     = "PAID"
)

type AdvancePayment struct {
	gorm.Model
	EmployeeID      uint       `gorm:"index;not null" json:"employeeId"`
	BusinessID      uint       `gorm:"index;not null" json:"businessId"`
	Amount          uint       `gorm:"not null" json:"amount"`
	Reason          string     `gorm:"size:500" json:"reason"`
	RepaymentMonths int        `gorm:"default:1" json:"repaymentMonths"`
	Status          string     `gorm:"size:20;default:'PENDING'" json:"status"`
	ReviewNote      string     `gorm:"size:500;default:''" json:"reviewNote"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	IsDeleted       bool       `gorm:"default:false" json:"-"`
}
