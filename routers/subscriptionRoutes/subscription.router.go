package subscriptionRoutes

import (
	subscriptionControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/subscription"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	subscriptionValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

func SetupSubscriptionRoutes(app *fiber.App) {
	subscriptionGroup := app.Group("/subscription")

	subscriptionGroup.Get("/plans", subscriptionControllers.ListPlans)

	// Gateway callback, authenticated by HMAC signature instead of JWT
	subscriptionGroup.Post("/webhook", subscriptionControllers.PaymentWebhook)

	employerGroup := subscriptionGroup.Group("", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleEmployer))
	employerGroup.Post("/order", subscriptionValidators.CreateOrder(),
		middleware.CheckPermissionMiddleware("manage-subscription"), subscriptionControllers.CreateOrder)
	employerGroup.Get("/me", subscriptionControllers.MySubscription)
}
