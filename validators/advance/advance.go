package advanceValidator

import (
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// RequestAdvance validator middleware
func RequestAdvance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount          uint   `json:"amount"`
			Reason          string `json:"reason"`
			RepaymentMonths int    `json:"repaymentMonths"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount == 0 {
			errors["amount"] = "Amount is required!"
		}

		if reqData.RepaymentMonths < 0 || reqData.RepaymentMonths > 12 {
			errors["repaymentMonths"] = "Repayment months must be between 1 and 12!"
		}

		if len(reqData.Reason) > 500 {
			errors["reason"] = "Reason must be at most 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRequestAdvance", reqData)
		return c.Next()
	}
}

// ReviewAdvance validator middleware
func ReviewAdvance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AdvanceID  uint   `json:"advanceId"`
			Status     string `json:"status"`
			ReviewNote string `json:"reviewNote"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AdvanceID == 0 {
			errors["advanceId"] = "Advance ID is required!"
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

		c.Locals("validatedReviewAdvance", reqData)
		return c.Next()
	}
}
