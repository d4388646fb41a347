package models

import (
	"gorm.io/gorm"
)

// Account roles carried in JWT claims.
const (
	RoleEmployee = "EMPLOYEE"
	RoleEmployer = "EMPLOYER"
	RoleAdmin    = "ADMIN"
)

type Permission struct {
	gorm.Model
	AccountID  uint   `gorm:"index;not null"` // employee or business id, scoped by Role
	Role       string `gorm:"size:20;not null"`
	Permission string `gorm:"type:varchar(255)"` // e.g. "apply-leave"
	IsDeleted  bool   `gorm:"default:false"`
}
