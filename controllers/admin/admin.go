package adminController

import (
	"log"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// ListBusinesses returns all registered businesses for the admin console.
func ListBusinesses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db

	var businesses []models.Business
	var total int64

	db.Model(&models.Business{}).Where("is_deleted = false").Count(&total)
	if err := db.Where("is_deleted = false").Order("created_at DESC").
		Offset(offset).Limit(*reqData.Limit).Find(&businesses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch businesses!", nil)
	}

	response := map[string]interface{}{
		"businesses": businesses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Businesses list.", response)
}

// SetBusinessBlocked blocks or unblocks a business account.
func SetBusinessBlocked(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlockBusiness").(*struct {
		BusinessID uint `json:"businessId"`
		IsBlocked  bool `json:"isBlocked"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var business models.Business
	if err := db.Where("id = ? AND is_deleted = false", reqData.BusinessID).First(&business).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Business not found!", nil)
	}

	if err := db.Model(&business).Update("is_blocked", reqData.IsBlocked).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update business!", nil)
	}

	log.Printf("Admin set business %d blocked=%v", business.ID, reqData.IsBlocked)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Business updated.", nil)
}

// ListAllEmployees returns employees across businesses for the admin console.
func ListAllEmployees(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db
	query := db.Model(&models.Employee{}).Where("is_deleted = false")

	if businessID := c.QueryInt("businessId"); businessID > 0 {
		query = query.Where("business_id = ?", businessID)
	}

	var employees []models.Employee
	var total int64

	query.Count(&total)
	if err := query.Order("created_at DESC").Offset(offset).Limit(*reqData.Limit).Find(&employees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

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

// CreatePlan adds a subscription plan.
func CreatePlan(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreatePlan").(*struct {
		Name         string `json:"name"`
		Amount       uint   `json:"amount"`
		DurationDays int    `json:"durationDays"`
		MaxEmployees int    `json:"maxEmployees"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan data!", nil)
	}

	plan := models.Plan{
		Name:         reqData.Name,
		Amount:       reqData.Amount,
		DurationDays: reqData.DurationDays,
		MaxEmployees: reqData.MaxEmployees,
		IsActive:     true,
	}
	if err := database.Database.Db.Create(&plan).Error; err != nil {
		log.Printf("Failed to create plan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plan created.", plan)
}

// UpdatePlan edits an existing plan. Amount changes do not touch
// subscriptions already purchased.
func UpdatePlan(c *fiber.Ctx) error {
	planID, err := c.ParamsInt("id")
	if err != nil || planID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan ID!", nil)
	}

	reqData, ok := c.Locals("validatedUpdatePlan").(*struct {
		Name         *string `json:"name"`
		Amount       *uint   `json:"amount"`
		DurationDays *int    `json:"durationDays"`
		MaxEmployees *int    `json:"maxEmployees"`
		IsActive     *bool   `json:"isActive"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan data!", nil)
	}

	db := database.Database.Db

	var plan models.Plan
	if err := db.Where("id = ? AND is_deleted = false", planID).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Amount != nil {
		updates["amount"] = *reqData.Amount
	}
	if reqData.DurationDays != nil {
		updates["duration_days"] = *reqData.DurationDays
	}
	if reqData.MaxEmployees != nil {
		updates["max_employees"] = *reqData.MaxEmployees
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}
	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	if err := db.Model(&plan).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan updated.", plan)
}

// DeletePlan retires a plan from sale.
func DeletePlan(c *fiber.Ctx) error {
	planID, err := c.ParamsInt("id")
	if err != nil || planID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan ID!", nil)
	}

	db := database.Database.Db

	var plan models.Plan
	if err := db.Where("id = ? AND is_deleted = false", planID).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	if err := db.Model(&plan).Updates(map[string]interface{}{"is_deleted": true, "is_active": false}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan deleted.", nil)
}

// ReviewDocument manually overrides a document's verification flags, used
// when vendor verification is unavailable or disputed.
func ReviewDocument(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReviewDocument").(*struct {
		EmployeeID   uint   `json:"employeeId"`
		DocumentType string `json:"documentType"`
		IsVerified   bool   `json:"isVerified"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review data!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", reqData.EmployeeID).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	doc := models.EmployeeDocument{
		EmployeeID:  reqData.EmployeeID,
		Type:        reqData.DocumentType,
		IsVerified:  reqData.IsVerified,
		IsCompleted: reqData.IsVerified,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_verified":  reqData.IsVerified,
			"is_completed": reqData.IsVerified,
		}),
	}).Create(&doc).Error
	if err != nil {
		log.Printf("Failed to review document for employee %d: %v", reqData.EmployeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review document!", nil)
	}

	log.Printf("Admin set %s verified=%v for employee %d", reqData.DocumentType, reqData.IsVerified, reqData.EmployeeID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document review recorded.", nil)
}
