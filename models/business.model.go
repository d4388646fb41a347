package models

import (
	"time"

	"gorm.io/gorm"
)

type Business struct {
	gorm.Model
	Name                string     `gorm:"not null" json:"name"`
	OwnerName           string     `gorm:"default:''" json:"ownerName"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Mobile              string     `gorm:"size:15;index" json:"mobile"`
	Password            string     `gorm:"not null" json:"-"`
	GstNumber           string     `gorm:"default:''" json:"gstNumber"`
	Address             string     `gorm:"default:''" json:"address"`
	City                string     `gorm:"default:''" json:"city"`
	State               string     `gorm:"default:''" json:"state"`
	PinCode             string     `gorm:"default:''" json:"pinCode"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"isBlocked"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
