package subscriptionValidator

import (
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder validator middleware
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlanID uint `json:"planId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PlanID == 0 {
			errors["planId"] = "Plan ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}
