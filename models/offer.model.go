package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OfferStatusDraft    = "DRAFT"
	OfferStatusSent     = "SENT"
	OfferStatusAccepted = "ACCEPTED"
	OfferStatusDeclined = "DECLINED"
)

type OfferLetter struct {
	gorm.Model
	BusinessID     uint       `gorm:"index;not null" json:"businessId"`
	EmployeeID     uint       `gorm:"index;default:0" json:"employeeId"`
	CandidateName  string     `gorm:"not null" json:"candidateName"`
	CandidateEmail string     `gorm:"not null" json:"candidateEmail"`
	Designation    string     `gorm:"not null" json:"designation"`
	MonthlySalary  uint       `gorm:"not null" json:"monthlySalary"`
	JoiningDate    time.Time  `gorm:"not null" json:"joiningDate"`
	Status         string     `gorm:"size:20;default:'DRAFT'" json:"status"`
	PdfPath        string     `gorm:"default:''" json:"pdfPath"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
	RespondedAt    *time.Time `json:"respondedAt,omitempty"`
	IsDeleted      bool       `gorm:"default:false" json:"-"`
}
