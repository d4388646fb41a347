package documentRoutes

import (
	documentControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/documents"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(app *fiber.App) {
	documentGroup := app.Group("/document", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleEmployee))

	documentGroup.Post("/upload", middleware.CheckPermissionMiddleware("upload-document"), documentControllers.UploadDocument)
	documentGroup.Put("/replace", middleware.CheckPermissionMiddleware("upload-document"), documentControllers.ReplaceDocument)
	documentGroup.Get("/list", documentControllers.ListDocuments)
}
