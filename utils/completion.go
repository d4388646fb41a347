package utils

import (
	"errors"

	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"gorm.io/gorm"
)

// ErrEmployeeNotFound is returned when the aggregate is queried for an
// unknown or deleted employee.
var ErrEmployeeNotFound = errors.New("employee not found")

// IsEmployeeVerified reports whether an employee is fully onboarded: the
// Aadhaar document and face photo are completed, and both profile sections
// are completed. Recomputed from current state on every call; other flows
// (job applications, offer acceptance) gate on this predicate.
func IsEmployeeVerified(db *gorm.DB, employeeID uint) (bool, error) {
	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrEmployeeNotFound
		}
		return false, err
	}

	var docs []models.EmployeeDocument
	if err := db.
		Where("employee_id = ? AND is_deleted = false AND type IN ?",
			employeeID, []string{models.DocumentAadhaarCard, models.DocumentFacePhoto}).
		Find(&docs).Error; err != nil {
		return false, err
	}

	aadhaarCompleted := false
	facePhotoCompleted := false
	for _, doc := range docs {
		switch doc.Type {
		case models.DocumentAadhaarCard:
			aadhaarCompleted = doc.IsCompleted
		case models.DocumentFacePhoto:
			facePhotoCompleted = doc.IsCompleted
		}
	}

	return aadhaarCompleted &&
		facePhotoCompleted &&
		employee.PersonalInfo.IsCompleted &&
		employee.ProfessionalInfo.IsCompleted, nil
}
