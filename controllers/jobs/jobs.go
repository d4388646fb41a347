package jobsController

import (
	"errors"
	"log"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateJobPost publishes a job opening under the employer's business.
func CreateJobPost(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedJobPost").(*struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		Location         string `json:"location"`
		MonthlySalaryMin uint   `json:"monthlySalaryMin"`
		MonthlySalaryMax uint   `json:"monthlySalaryMax"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid job post data!", nil)
	}

	if reqData.MonthlySalaryMax != 0 && reqData.MonthlySalaryMax < reqData.MonthlySalaryMin {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Salary range is invalid!", nil)
	}

	job := models.JobPost{
		BusinessID:       businessID,
		Title:            reqData.Title,
		Description:      reqData.Description,
		Location:         reqData.Location,
		MonthlySalaryMin: reqData.MonthlySalaryMin,
		MonthlySalaryMax: reqData.MonthlySalaryMax,
		IsActive:         true,
	}
	if err := database.Database.Db.Create(&job).Error; err != nil {
		log.Printf("Failed to create job post: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job post created.", job)
}

// CloseJobPost deactivates a job opening.
func CloseJobPost(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid job post ID!", nil)
	}

	db := database.Database.Db

	var job models.JobPost
	if err := db.Where("id = ? AND business_id = ? AND is_deleted = false", jobID, businessID).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job post not found!", nil)
	}

	if err := db.Model(&job).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close job post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job post closed.", nil)
}

// ListJobPosts returns open jobs for browsing, newest first.
func ListJobPosts(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db
	query := db.Model(&models.JobPost{}).Where("is_active = ? AND is_deleted = ?", true, false)

	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}

	var jobs []models.JobPost
	var total int64

	query.Count(&total)
	if err := query.Order("created_at DESC").Offset(offset).Limit(*reqData.Limit).Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch job posts!", nil)
	}

	response := map[string]interface{}{
		"jobs": jobs,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job posts list.", response)
}

// ApplyToJob records an application. Only fully verified profiles can apply.
func ApplyToJob(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	reqData, ok := c.Locals("validatedApplyJob").(*struct {
		JobPostID uint `json:"jobPostId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application data!", nil)
	}

	db := database.Database.Db

	verified, err := utils.IsEmployeeVerified(db, employeeID)
	if err != nil {
		if errors.Is(err, utils.ErrEmployeeNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check verification status!", nil)
	}
	if !verified {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete profile verification before applying!", nil)
	}

	var job models.JobPost
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.JobPostID, true, false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job post not found!", nil)
	}

	var existing int64
	db.Model(&models.JobApplication{}).
		Where("job_post_id = ? AND employee_id = ? AND is_deleted = false", job.ID, employeeID).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already applied to this job!", nil)
	}

	application := models.JobApplication{
		JobPostID:  job.ID,
		EmployeeID: employeeID,
		Status:     models.ApplicationApplied,
	}
	if err := db.Create(&application).Error; err != nil {
		log.Printf("Failed to create job application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply to job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted.", application)
}

// ReviewApplication moves an application through the hiring pipeline.
func ReviewApplication(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedReviewApplication").(*struct {
		ApplicationID uint   `json:"applicationId"`
		Status        string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review data!", nil)
	}

	switch reqData.Status {
	case models.ApplicationShortlisted, models.ApplicationRejected, models.ApplicationHired:
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be SHORTLISTED, REJECTED or HIRED!", nil)
	}

	db := database.Database.Db

	var application models.JobApplication
	if err := db.Where("id = ? AND is_deleted = false", reqData.ApplicationID).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	var job models.JobPost
	if err := db.Where("id = ? AND business_id = ?", application.JobPostID, businessID).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job post not found!", nil)
	}

	if err := db.Model(&application).Update("status", reqData.Status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review application!", nil)
	}

	go utils.SendPushToEmployee(db, application.EmployeeID, "Application update",
		"Your application for "+job.Title+" is now "+reqData.Status+".")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application reviewed.", application)
}

// ListApplications returns applications for one of the employer's job posts.
func ListApplications(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid job post ID!", nil)
	}

	db := database.Database.Db

	var job models.JobPost
	if err := db.Where("id = ? AND business_id = ? AND is_deleted = false", jobID, businessID).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job post not found!", nil)
	}

	var applications []models.JobApplication
	if err := db.Where("job_post_id = ? AND is_deleted = false", job.ID).Order("created_at DESC").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications list.", applications)
}
