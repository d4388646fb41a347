package advanceRoutes

import (
	advanceControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/advance"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	advanceValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/advance"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"

	"github.com/gofiber/fiber/v2"
)

func SetupAdvanceRoutes(app *fiber.App) {
	advanceGroup := app.Group("/advance", middleware.JWTMiddleware)

	advanceGroup.Post("/request", advanceValidators.RequestAdvance(),
		middleware.RequireRole(models.RoleEmployee), middleware.CheckPermissionMiddleware("request-advance"),
		advanceControllers.RequestAdvance)
	advanceGroup.Patch("/review", advanceValidators.ReviewAdvance(),
		middleware.RequireRole(models.RoleEmployer), middleware.CheckPermissionMiddleware("review-advance"),
		advanceControllers.ReviewAdvance)
	advanceGroup.Get("/list", commonValidators.Pagination(), advanceControllers.ListAdvances)
}
