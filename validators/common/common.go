package commonValidator

import (
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// Pagination validator middleware, shared by every list endpoint.
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		// List endpoints accept pagination in the query string too
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		if reqData.Page == nil {
			reqData.Page = &page
		}
		if reqData.Limit == nil {
			reqData.Limit = &limit
		}

		errors := make(map[string]string)
		if *reqData.Page < 1 {
			errors["page"] = "Page must be at least 1!"
		}
		if *reqData.Limit < 1 || *reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPagination", reqData)
		return c.Next()
	}
}
