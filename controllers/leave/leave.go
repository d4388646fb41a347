package leaveController

import (
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

var allowedLeaveTypes = map[string]bool{
	models.LeaveTypeCasual: true,
	models.LeaveTypeSick:   true,
	models.LeaveTypeEarned: true,
	models.LeaveTypeUnpaid: true,
}

// ApplyLeave files a leave request for the authenticated employee.
func ApplyLeave(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	reqData, ok := c.Locals("validatedApplyLeave").(*struct {
		LeaveType string `json:"leaveType"`
		FromDate  string `json:"fromDate"`
		ToDate    string `json:"toDate"`
		Reason    string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid leave request data!", nil)
	}

	if !allowedLeaveTypes[reqData.LeaveType] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid leave type!", nil)
	}

	fromDate, err := time.Parse("2006-01-02", reqData.FromDate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid from date, expected YYYY-MM-DD!", nil)
	}
	toDate, err := time.Parse("2006-01-02", reqData.ToDate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid to date, expected YYYY-MM-DD!", nil)
	}
	if toDate.Before(fromDate) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "To date cannot be before from date!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}
	if employee.BusinessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Employee is not linked to a business!", nil)
	}

	// Reject overlap with an existing pending or approved request
	var overlap int64
	db.Model(&models.LeaveRequest{}).
		Where("employee_id = ? AND is_deleted = false AND status IN ? AND from_date <= ? AND to_date >= ?",
			employeeID, []string{models.LeaveStatusPending, models.LeaveStatusApproved}, toDate, fromDate).
		Count(&overlap)
	if overlap > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Leave already requested for this period!", nil)
	}

	days := int(toDate.Sub(fromDate).Hours()/24) + 1

	leave := models.LeaveRequest{
		EmployeeID: employeeID,
		BusinessID: employee.BusinessID,
		LeaveType:  reqData.LeaveType,
		FromDate:   fromDate,
		ToDate:     toDate,
		Days:       days,
		Reason:     reqData.Reason,
		Status:     models.LeaveStatusPending,
	}
	if err := db.Create(&leave).Error; err != nil {
		log.Printf("Failed to create leave request for employee %d: %v", employeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply for leave!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Leave request submitted.", leave)
}

// ReviewLeave lets the employer approve or reject a pending request.
func ReviewLeave(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedReviewLeave").(*struct {
		LeaveID    uint   `json:"leaveId"`
		Status     string `json:"status"`
		ReviewNote string `json:"reviewNote"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review data!", nil)
	}

	if reqData.Status != models.LeaveStatusApproved && reqData.Status != models.LeaveStatusRejected {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be APPROVED or REJECTED!", nil)
	}

	db := database.Database.Db

	var leave models.LeaveRequest
	if err := db.Where("id = ? AND business_id = ? AND is_deleted = false", reqData.LeaveID, businessID).First(&leave).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Leave request not found!", nil)
	}
	if leave.Status != models.LeaveStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Leave request is already reviewed!", nil)
	}

	reviewedAt := time.Now()
	leave.Status = reqData.Status
	leave.ReviewNote = reqData.ReviewNote
	leave.ReviewedAt = &reviewedAt

	if err := db.Save(&leave).Error; err != nil {
		log.Printf("Failed to review leave %d: %v", leave.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review leave request!", nil)
	}

	var employee models.Employee
	if err := db.First(&employee, leave.EmployeeID).Error; err == nil {
		if employee.Email != "" {
			utils.SendLeaveStatusEmail(employee.Email, employee.Name, leave.LeaveType, leave.Status, leave.ReviewNote)
		}
		go utils.SendPushToEmployee(db, employee.ID, "Leave request "+leave.Status,
			"Your "+leave.LeaveType+" leave request was "+leave.Status+".")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leave request reviewed.", leave)
}

// ListLeaves returns leave requests, scoped by role: employees see their own,
// employers see their business queue (optionally filtered by status).
func ListLeaves(c *fiber.Ctx) error {
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
	query := db.Model(&models.LeaveRequest{}).Where("is_deleted = false")

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

	var leaves []models.LeaveRequest
	var total int64

	query.Count(&total)
	if err := query.Order("created_at DESC").Offset(offset).Limit(*reqData.Limit).Find(&leaves).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leave requests!", nil)
	}

	response := map[string]interface{}{
		"leaves": leaves,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leave requests list.", response)
}

// MonthlySummary reports approved leave days per type for the current month,
// or for ?month=YYYY-MM when given.
func MonthlySummary(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	ref := time.Now()
	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid month, expected YYYY-MM!", nil)
		}
		ref = parsed
	}

	monthStart := now.With(ref).BeginningOfMonth()
	monthEnd := now.With(ref).EndOfMonth()

	var leaves []models.LeaveRequest
	err := database.Database.Db.
		Where("employee_id = ? AND is_deleted = false AND status = ? AND from_date <= ? AND to_date >= ?",
			employeeID, models.LeaveStatusApproved, monthEnd, monthStart).
		Find(&leaves).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leave summary!", nil)
	}

	summary := map[string]int{}
	totalDays := 0
	for _, leave := range leaves {
		// Clamp to the month window so spanning requests count partial days
		from := leave.FromDate
		if from.Before(monthStart) {
			from = monthStart
		}
		to := leave.ToDate
		if to.After(monthEnd) {
			to = monthEnd
		}
		days := int(to.Sub(from).Hours()/24) + 1
		summary[leave.LeaveType] += days
		totalDays += days
	}

	response := map[string]interface{}{
		"month":     monthStart.Format("2006-01"),
		"byType":    summary,
		"totalDays": totalDays,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Monthly leave summary.", response)
}
