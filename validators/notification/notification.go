package notificationValidator

import (
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterDevice validator middleware
func RegisterDevice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Token    string `json:"token"`
			Platform string `json:"platform"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Token == "" {
			errors["token"] = "Token is required!"
		}

		switch reqData.Platform {
		case "", "android", "ios", "web":
		default:
			errors["platform"] = "Platform must be android, ios or web!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegisterDevice", reqData)
		return c.Next()
	}
}
