package models

import (
	"gorm.io/gorm"
)

type DeviceToken struct {
	gorm.Model
	EmployeeID uint   `gorm:"index;default:0" json:"employeeId"`
	BusinessID uint   `gorm:"index;default:0" json:"businessId"`
	Token      string `gorm:"unique;not null" json:"token"`
	Platform   string `gorm:"size:20;default:'android'" json:"platform"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}

type Notification struct {
	gorm.Model
	EmployeeID uint   `gorm:"index;default:0" json:"employeeId"`
	BusinessID uint   `gorm:"index;default:0" json:"businessId"`
	Title      string `gorm:"not null" json:"title"`
	Body       string `gorm:"size:1000" json:"body"`
	IsRead     bool   `gorm:"default:false" json:"isRead"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}
