package models

import (
	"gorm.io/gorm"
)

// Document types stored per employee.
const (
	DocumentAadhaarCard = "aadhaarCard"
	DocumentFacePhoto   = "facePhoto"
	DocumentPanCard     = "panCard"
)

// EmployeeDocument holds one document entry per (employee, type). The
// composite unique index lets verification and upload flows write with an
// ON CONFLICT upsert instead of a find-then-update sequence, so two
// concurrent writers cannot create duplicate entries for the same type.
type EmployeeDocument struct {
	gorm.Model
	EmployeeID    uint       `gorm:"not null;uniqueIndex:idx_employee_doc_type" json:"employeeId"`
	Type          string     `gorm:"size:40;not null;uniqueIndex:idx_employee_doc_type" json:"type"`
	IsVerified    bool       `gorm:"default:false" json:"isVerified"`
	IsCompleted   bool       `gorm:"default:false" json:"isCompleted"`
	AadhaarNumber string     `gorm:"default:''" json:"aadhaarNumber,omitempty"`
	Front         StoredFile `gorm:"embedded;embeddedPrefix:front_" json:"front"`
	Back          StoredFile `gorm:"embedded;embeddedPrefix:back_" json:"back"`
	IsDeleted     bool       `gorm:"default:false" json:"-"`
}

// StoredFile is a reference to an uploaded file in bucket storage.
type StoredFile struct {
	URI         string `gorm:"default:''" json:"uri"`
	Filename    string `gorm:"default:''" json:"filename"`
	ContentType string `gorm:"default:''" json:"contentType"`
}
