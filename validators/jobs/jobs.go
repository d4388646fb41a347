package jobsValidator

import (
	"strings"

	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// JobPost validator middleware
func JobPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title            string `json:"title"`
			Description      string `json:"description"`
			Location         string `json:"location"`
			MonthlySalaryMin uint   `json:"monthlySalaryMin"`
			MonthlySalaryMax uint   `json:"monthlySalaryMax"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(reqData.Description) > 2000 {
			errors["description"] = "Description must be at most 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobPost", reqData)
		return c.Next()
	}
}

// ApplyJob validator middleware
func ApplyJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			JobPostID uint `json:"jobPostId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.JobPostID == 0 {
			errors["jobPostId"] = "Job post ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplyJob", reqData)
		return c.Next()
	}
}

// ReviewApplication validator middleware
func ReviewApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ApplicationID uint   `json:"applicationId"`
			Status        string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ApplicationID == 0 {
			errors["applicationId"] = "Application ID is required!"
		}

		if reqData.Status == "" {
			errors["status"] = "Status is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewApplication", reqData)
		return c.Next()
	}
}
