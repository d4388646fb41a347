package adminValidator

import (
	"strings"

	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/gofiber/fiber/v2"
)

// BlockBusiness validator middleware
func BlockBusiness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			BusinessID uint `json:"businessId"`
			IsBlocked  bool `json:"isBlocked"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.BusinessID == 0 {
			errors["businessId"] = "Business ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlockBusiness", reqData)
		return c.Next()
	}
}

// CreatePlan validator middleware
func CreatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Amount       uint   `json:"amount"`
			DurationDays int    `json:"durationDays"`
			MaxEmployees int    `json:"maxEmployees"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Plan name must be at least 3 characters long!"
		}

		if reqData.Amount == 0 {
			errors["amount"] = "Amount is required!"
		}

		if reqData.DurationDays < 1 {
			errors["durationDays"] = "Duration days must be at least 1!"
		}

		if reqData.MaxEmployees < 1 {
			errors["maxEmployees"] = "Max employees must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreatePlan", reqData)
		return c.Next()
	}
}

// UpdatePlan validator middleware, all fields optional
func UpdatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         *string `json:"name"`
			Amount       *uint   `json:"amount"`
			DurationDays *int    `json:"durationDays"`
			MaxEmployees *int    `json:"maxEmployees"`
			IsActive     *bool   `json:"isActive"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 3 {
			errors["name"] = "Plan name must be at least 3 characters long!"
		}

		if reqData.Amount != nil && *reqData.Amount == 0 {
			errors["amount"] = "Amount cannot be zero!"
		}

		if reqData.DurationDays != nil && *reqData.DurationDays < 1 {
			errors["durationDays"] = "Duration days must be at least 1!"
		}

		if reqData.MaxEmployees != nil && *reqData.MaxEmployees < 1 {
			errors["maxEmployees"] = "Max employees must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdatePlan", reqData)
		return c.Next()
	}
}

// ReviewDocument validator middleware
func ReviewDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EmployeeID   uint   `json:"employeeId"`
			DocumentType string `json:"documentType"`
			IsVerified   bool   `json:"isVerified"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.EmployeeID == 0 {
			errors["employeeId"] = "Employee ID is required!"
		}

		switch reqData.DocumentType {
		case models.DocumentAadhaarCard, models.DocumentFacePhoto, models.DocumentPanCard:
		default:
			errors["documentType"] = "Invalid document type!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewDocument", reqData)
		return c.Next()
	}
}
