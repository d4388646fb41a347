package employeeController

import (
	"errors"
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OnboardEmployee registers an employee under the employer's business.
func OnboardEmployee(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedOnboard").(*struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
		Email  string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid employee data!", nil)
	}

	db := database.Database.Db

	// Active subscription caps how many employees a business can hold
	var sub models.Subscription
	err := db.Where("business_id = ? AND status = ?", businessID, models.SubscriptionActive).
		Preload("Plan").
		Order("created_at DESC").
		First(&sub).Error
	if err == nil {
		var count int64
		db.Model(&models.Employee{}).Where("business_id = ? AND is_deleted = false", businessID).Count(&count)
		if count >= int64(sub.Plan.MaxEmployees) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Employee limit reached for your plan!", nil)
		}
	}

	var existing models.Employee
	if err := db.Where("mobile = ? AND is_deleted = false", reqData.Mobile).First(&existing).Error; err == nil {
		if existing.BusinessID != 0 && existing.BusinessID != businessID {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Employee is already linked to another business!", nil)
		}
		// Self-registered account, claim it for this business
		updates := map[string]interface{}{"business_id": businessID}
		if existing.Name == "" {
			updates["name"] = reqData.Name
		}
		if existing.Email == "" {
			updates["email"] = reqData.Email
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to onboard employee!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee linked to business.", existing)
	}

	employee := models.Employee{
		BusinessID: businessID,
		Name:       reqData.Name,
		Mobile:     reqData.Mobile,
		Email:      reqData.Email,
	}
	if err := db.Create(&employee).Error; err != nil {
		log.Printf("Failed to create employee: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to onboard employee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Employee onboarded successfully.", employee)
}

// UpdatePersonalInfo fills the personal section of the profile and flips
// its completion flag, one of the four inputs of the onboarding aggregate.
func UpdatePersonalInfo(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	reqData, ok := c.Locals("validatedPersonalInfo").(*struct {
		Name          string `json:"name"`
		FatherName    string `json:"fatherName"`
		DOB           string `json:"dob"`
		Gender        string `json:"gender"`
		MaritalStatus string `json:"maritalStatus"`
		Address       string `json:"address"`
		City          string `json:"city"`
		State         string `json:"state"`
		PinCode       string `json:"pinCode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid personal info!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	employee.Name = reqData.Name
	employee.PersonalInfo = models.PersonalInfo{
		FatherName:    reqData.FatherName,
		DOB:           reqData.DOB,
		Gender:        reqData.Gender,
		MaritalStatus: reqData.MaritalStatus,
		Address:       reqData.Address,
		City:          reqData.City,
		State:         reqData.State,
		PinCode:       reqData.PinCode,
		IsCompleted:   true,
	}

	if err := db.Save(&employee).Error; err != nil {
		log.Printf("Failed to update personal info for employee %d: %v", employeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update personal info!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Personal info updated.", employee)
}

// UpdateProfessionalInfo fills the professional section and flips its
// completion flag.
func UpdateProfessionalInfo(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	reqData, ok := c.Locals("validatedProfessionalInfo").(*struct {
		Designation     string `json:"designation"`
		Department      string `json:"department"`
		ExperienceYears int    `json:"experienceYears"`
		Skills          string `json:"skills"`
		MonthlySalary   uint   `json:"monthlySalary"`
		JoiningDate     string `json:"joiningDate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid professional info!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	var joiningDate *time.Time
	if reqData.JoiningDate != "" {
		parsed, err := time.Parse("2006-01-02", reqData.JoiningDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid joining date, expected YYYY-MM-DD!", nil)
		}
		joiningDate = &parsed
	}

	employee.ProfessionalInfo = models.ProfessionalInfo{
		Designation:     reqData.Designation,
		Department:      reqData.Department,
		ExperienceYears: reqData.ExperienceYears,
		Skills:          reqData.Skills,
		MonthlySalary:   reqData.MonthlySalary,
		JoiningDate:     joiningDate,
		IsCompleted:     true,
	}

	if err := db.Save(&employee).Error; err != nil {
		log.Printf("Failed to update professional info for employee %d: %v", employeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update professional info!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Professional info updated.", employee)
}

// GetProfile returns the authenticated employee's profile.
func GetProfile(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	var employee models.Employee
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee profile.", employee)
}

// ListEmployees returns paginated employees of the employer's business.
func ListEmployees(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var employees []models.Employee
	var total int64

	db := database.Database.Db
	if err := db.Where("business_id = ? AND is_deleted = ?", businessID, false).
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&employees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

	db.Model(&models.Employee{}).Where("business_id = ? AND is_deleted = ?", businessID, false).Count(&total)

	response := map[string]interface{}{
		"employees": employees,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employees list.", response)
}

// DeleteEmployee soft deletes an employee of the employer's business along
// with their document entries.
func DeleteEmployee(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	employeeID, err := c.ParamsInt("id")
	if err != nil || employeeID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid employee ID!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND business_id = ? AND is_deleted = false", employeeID, businessID).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&employee).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.EmployeeDocument{}).
			Where("employee_id = ?", employee.ID).
			Update("is_deleted", true).Error
	})
	if err != nil {
		log.Printf("Failed to delete employee %d: %v", employee.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete employee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee deleted.", nil)
}
