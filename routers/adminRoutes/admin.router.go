package adminRoutes

import (
	adminControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/admin"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	adminValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/admin"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/business/list", commonValidators.Pagination(), adminControllers.ListBusinesses)
	adminGroup.Patch("/business/block", adminValidators.BlockBusiness(), adminControllers.SetBusinessBlocked)
	adminGroup.Get("/employee/list", commonValidators.Pagination(), adminControllers.ListAllEmployees)

	adminGroup.Post("/plan", adminValidators.CreatePlan(), adminControllers.CreatePlan)
	adminGroup.Patch("/plan/:id", adminValidators.UpdatePlan(), adminControllers.UpdatePlan)
	adminGroup.Delete("/plan/:id", adminControllers.DeletePlan)

	adminGroup.Patch("/document/review", adminValidators.ReviewDocument(), adminControllers.ReviewDocument)
}
