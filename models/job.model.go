package models

import (
	"gorm.io/gorm"
)

const (
	ApplicationApplied     = "APPLIED"
	ApplicationShortlisted = "SHORTLISTED"
	ApplicationRejected    = "REJECTED"
	ApplicationHired       = "HIRED"
)

type JobPost struct {
	gorm.Model
	BusinessID       uint   `gorm:"index;not null" json:"businessId"`
	Title            string `gorm:"not null" json:"title"`
	Description      string `gorm:"size:2000" json:"description"`
	Location         string `gorm:"default:''" json:"location"`
	MonthlySalaryMin uint   `gorm:"default:0" json:"monthlySalaryMin"`
	MonthlySalaryMax uint   `gorm:"default:0" json:"monthlySalaryMax"`
	IsActive         bool   `gorm:"default:true" json:"isActive"`
	IsDeleted        bool   `gorm:"default:false" json:"-"`
}

type JobApplication struct {
	gorm.Model
	JobPostID  uint   `gorm:"not null;uniqueIndex:idx_job_applicant" json:"jobPostId"`
	EmployeeID uint   `gorm:"not null;uniqueIndex:idx_job_applicant" json:"employeeId"`
	Status     string `gorm:"size:20;default:'APPLIED'" json:"status"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}
