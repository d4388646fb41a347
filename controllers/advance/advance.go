package advanceController

import (
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestAdvance files an advance payment request. The amount is capped at
// two months of the employee's recorded salary.
func RequestAdvance(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	reqData, ok := c.Locals("validatedRequestAdvance").(*struct {
		Amount          uint   `json:"amount"`
		Reason          string `json:"reason"`
		RepaymentMonths int    `json:"repaymentMonths"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid advance request data!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}
	if employee.BusinessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Employee is not linked to a business!", nil)
	}

	if employee.ProfessionalInfo.MonthlySalary == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Salary not recorded, cannot request advance!", nil)
	}
	if reqData.Amount > 2*employee.ProfessionalInfo.MonthlySalary {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Advance cannot exceed two months salary!", nil)
	}

	var pending int64
	db.Model(&models.AdvancePayment{}).
		Where("employee_id = ? AND is_deleted = false AND status = ?", employeeID, models.AdvanceStatusPending).
		Count(&pending)
	if pending > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A pending advance request already exists!", nil)
	}

	advance := models.AdvancePayment{
		EmployeeID:      employeeID,
		BusinessID:      employee.BusinessID,
		Amount:          reqData.Amount,
		Reason:          reqData.Reason,
		RepaymentMonths: reqData.RepaymentMonths,
		Status:          models.AdvanceStatusPending,
	}
	if advance.RepaymentMonths < 1 {
		advance.RepaymentMonths = 1
	}

	if err := db.Create(&advance).Error; err != nil {
		log.Printf("Failed to create advance request for employee %d: %v", employeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request advance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Advance request submitted.", advance)
}

// ReviewAdvance lets the employer approve, reject or settle a request.
func ReviewAdvance(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedReviewAdvance").(*struct {
		AdvanceID  uint   `json:"advanceId"`
		Status     string `json:"status"`
		ReviewNote string `json:"reviewNote"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review data!", nil)
	}

	db := database.Database.Db

	var advance models.AdvancePayment
	if err := db.Where("id = ? AND business_id = ? AND is_deleted = false", reqData.AdvanceID, businessID).First(&advance).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Advance request not found!", nil)
	}

	switch reqData.Status {
	case models.AdvanceStatusApproved, models.AdvanceStatusRejected:
		if advance.Status != models.AdvanceStatusPending {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Advance request is already reviewed!", nil)
		}
		reviewedAt := time.Now()
		advance.Status = reqData.Status
		advance.ReviewNote = reqData.ReviewNote
		advance.ReviewedAt = &reviewedAt
	case models.AdvanceStatusPaid:
		if advance.Status != models.AdvanceStatusApproved {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only approved advances can be marked paid!", nil)
		}
		paidAt := time.Now()
		advance.Status = models.AdvanceStatusPaid
		advance.PaidAt = &paidAt
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be APPROVED, REJECTED or PAID!", nil)
	}

	if err := db.Save(&advance).Error; err != nil {
		log.Printf("Failed to review advance %d: %v", advance.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review advance request!", nil)
	}

	var employee models.Employee
	if err := db.First(&employee, advance.EmployeeID).Error; err == nil {
		if employee.Email != "" {
			utils.SendAdvanceStatusEmail(employee.Email, employee.Name, advance.Amount, advance.Status)
		}
		go utils.SendPushToEmployee(db, employee.ID, "Advance request "+advance.Status,
			"Your advance payment request was "+advance.Status+".")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Advance request reviewed.", advance)
}

// ListAdvances returns advance requests scoped by role.
func ListAdvances(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db
	query := db.Model(&models.AdvancePayment{}).Where("is_deleted = false")

	if role == models.RoleEmployer {
		businessID, ok := c.Locals("businessId").(uint)
		if !ok || businessID == 0 {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
		}
		query = query.Where("business_id = ?", businessID)
	} else {
		employeeID, ok := c.Locals("accountId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
		}
		query = query.Where("employee_id = ?", employeeID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var advances []models.AdvancePayment
	var total int64

	query.Count(&total)
	if err := query.Order("created_at DESC").Offset(offset).Limit(*reqData.Limit).Find(&advances).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch advance requests!", nil)
	}

	response := map[string]interface{}{
		"advances": advances,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Advance requests list.", response)
}
