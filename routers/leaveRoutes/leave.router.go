package leaveRoutes

import (
	leaveControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/leave"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"
	leaveValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/leave"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaveRoutes(app *fiber.App) {
	leaveGroup := app.Group("/leave", middleware.JWTMiddleware)

	leaveGroup.Post("/apply", leaveValidators.ApplyLeave(),
		middleware.RequireRole(models.RoleEmployee), middleware.CheckPermissionMiddleware("apply-leave"),
		leaveControllers.ApplyLeave)
	leaveGroup.Patch("/review", leaveValidators.ReviewLeave(),
		middleware.RequireRole(models.RoleEmployer), middleware.CheckPermissionMiddleware("review-leave"),
		leaveControllers.ReviewLeave)
	leaveGroup.Get("/list", commonValidators.Pagination(), leaveControllers.ListLeaves)
	leaveGroup.Get("/summary", middleware.RequireRole(models.RoleEmployee), leaveControllers.MonthlySummary)
}
