package jobRoutes

import (
	jobsControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/jobs"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"
	jobsValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/jobs"

	"github.com/gofiber/fiber/v2"
)

func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/job", middleware.JWTMiddleware)

	jobGroup.Get("/list", commonValidators.Pagination(), jobsControllers.ListJobPosts)

	jobGroup.Post("/create", jobsValidators.JobPost(),
		middleware.RequireRole(models.RoleEmployer), middleware.CheckPermissionMiddleware("post-job"),
		jobsControllers.CreateJobPost)
	jobGroup.Patch("/:id/close", middleware.RequireRole(models.RoleEmployer), jobsControllers.CloseJobPost)
	jobGroup.Get("/:id/applications", middleware.RequireRole(models.RoleEmployer), jobsControllers.ListApplications)
	jobGroup.Patch("/application/review", jobsValidators.ReviewApplication(),
		middleware.RequireRole(models.RoleEmployer), jobsControllers.ReviewApplication)

	jobGroup.Post("/apply", jobsValidators.ApplyJob(),
		middleware.RequireRole(models.RoleEmployee), middleware.CheckPermissionMiddleware("apply-job"),
		jobsControllers.ApplyToJob)
}
