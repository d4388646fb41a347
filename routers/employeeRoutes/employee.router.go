package employeeRoutes

import (
	employeeControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/employee"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"
	employeeValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/employee"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App) {
	employeeGroup := app.Group("/employee", middleware.JWTMiddleware)

	employeeGroup.Post("/onboard", employeeValidators.Onboard(),
		middleware.RequireRole(models.RoleEmployer), middleware.CheckPermissionMiddleware("onboard-employee"),
		employeeControllers.OnboardEmployee)
	employeeGroup.Get("/list", commonValidators.Pagination(),
		middleware.RequireRole(models.RoleEmployer), employeeControllers.ListEmployees)
	employeeGroup.Delete("/:id", middleware.RequireRole(models.RoleEmployer), employeeControllers.DeleteEmployee)

	employeeGroup.Get("/profile", middleware.RequireRole(models.RoleEmployee), employeeControllers.GetProfile)
	employeeGroup.Put("/personal-info", employeeValidators.PersonalInfo(),
		middleware.RequireRole(models.RoleEmployee), employeeControllers.UpdatePersonalInfo)
	employeeGroup.Put("/professional-info", employeeValidators.ProfessionalInfo(),
		middleware.RequireRole(models.RoleEmployee), employeeControllers.UpdateProfessionalInfo)
}
