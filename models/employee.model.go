package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	BusinessID       uint             `gorm:"index" json:"businessId"`
	Name             string           `gorm:"default:''" json:"name"`
	Mobile           string           `gorm:"size:15;unique;not null" json:"mobile"`
	Email            string           `gorm:"default:''" json:"email"`
	ProfileImage     string           `gorm:"default:''" json:"profileImage"`
	PersonalInfo     PersonalInfo     `gorm:"embedded;embeddedPrefix:personal_" json:"personalInfo"`
	ProfessionalInfo ProfessionalInfo `gorm:"embedded;embeddedPrefix:professional_" json:"professionalInfo"`
	LastLogin        *time.Time       `json:"lastLogin,omitempty"`
	IsBlocked        bool             `gorm:"default:false" json:"isBlocked"`
	IsDeleted        bool             `gorm:"default:false" json:"-"`
}

// PersonalInfo is one half of the profile completeness record. IsCompleted
// flips when the employee submits the full personal section.
type PersonalInfo struct {
	FatherName    string `gorm:"default:''" json:"fatherName"`
	DOB           string `gorm:"default:''" json:"dob"`
	Gender        string `gorm:"default:''" json:"gender"`
	MaritalStatus string `gorm:"default:''" json:"maritalStatus"`
	Address       string `gorm:"default:''" json:"address"`
	City          string `gorm:"default:''" json:"city"`
	State         string `gorm:"default:''" json:"state"`
	PinCode       string `gorm:"default:''" json:"pinCode"`
	IsCompleted   bool   `gorm:"default:false" json:"isCompleted"`
}

type ProfessionalInfo struct {
	Designation     string     `gorm:"default:''" json:"designation"`
	Department      string     `gorm:"default:''" json:"department"`
	ExperienceYears int        `gorm:"default:0" json:"experienceYears"`
	Skills          string     `gorm:"default:''" json:"skills"`
	MonthlySalary   uint       `gorm:"default:0" json:"monthlySalary"`
	JoiningDate     *time.Time `json:"joiningDate,omitempty"`
	IsCompleted     bool       `gorm:"default:false" json:"isCompleted"`
}
