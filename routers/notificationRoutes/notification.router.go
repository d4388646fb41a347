package notificationRoutes

import (
	notificationControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/notification"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"
	notificationValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification", middleware.JWTMiddleware)

	notificationGroup.Post("/device", notificationValidators.RegisterDevice(), notificationControllers.RegisterDevice)
	notificationGroup.Get("/list", commonValidators.Pagination(), notificationControllers.ListNotifications)
	notificationGroup.Patch("/:id/read", notificationControllers.MarkNotificationRead)
}
