package leaveValidator

import (
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ApplyLeave validator middleware
func ApplyLeave() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LeaveType string `json:"leaveType"`
			FromDate  string `json:"fromDate"`
			ToDate    string `json:"toDate"`
			Reason    string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LeaveType == "" {
			errors["leaveType"] = "Leave type is required!"
		}

		if err := validate.Var(reqData.FromDate, "required,datetime=2006-01-02"); err != nil {
			errors["fromDate"] = "From date must be in YYYY-MM-DD format!"
		}

		if err := validate.Var(reqData.ToDate, "required,datetime=2006-01-02"); err != nil {
			errors["toDate"] = "To date must be in YYYY-MM-DD format!"
		}

		if len(reqData.Reason) > 500 {
			errors["reason"] = "Reason must be at most 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplyLeave", reqData)
		return c.Next()
	}
}

// ReviewLeave validator middleware
func ReviewLeave() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LeaveID    uint   `json:"leaveId"`
			Status     string `json:"status"`
			ReviewNote string `json:"reviewNote"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LeaveID == 0 {
			errors["leaveId"] = "Leave ID is required!"
		}

		if reqData.Status == "" {
			errors["status"] = "Status is required!"
		}

		if len(reqData.ReviewNote) > 500 {
			errors["reviewNote"] = "Review note must be at most 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewLeave", reqData)
		return c.Next()
	}
}
