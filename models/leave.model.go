package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LeaveStatusPending  = "PENDING"
	LeaveStatusApproved = "APPROVED"
	LeaveStatusRejected = "REJECTED"
)

const (
	LeaveTypeCasual = "CASUAL"
	LeaveTypeSick   = "SICK"
	LeaveTypeEarned = "EARNED"
	LeaveTypeUnpaid = "UNPAID"
)

type LeaveRequest struct {
	gorm.Model
	EmployeeID uint       `gorm:"index;not null" json:"employeeId"`
	BusinessID uint       `gorm:"index;not null" json:"businessId"`
	LeaveType  string     `gorm:"size:20;not null" json:"leaveType"`
	FromDate   time.Time  `gorm:"not null" json:"fromDate"`
	ToDate     time.Time  `gorm:"not null" json:"toDate"`
	Days       int        `gorm:"not null" json:"days"`
	Reason     string     `gorm:"size:500" json:"reason"`
	Status     string     `gorm:"size:20;default:'PENDING'" json:"status"`
	ReviewNote string     `gorm:"size:500;default:''" json:"reviewNote"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	IsDeleted  bool       `gorm:"default:false" json:"-"`
}
