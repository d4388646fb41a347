package offerRoutes

import (
	offerControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/offer"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"
	offerValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/offer"

	"github.com/gofiber/fiber/v2"
)

func SetupOfferRoutes(app *fiber.App) {
	offerGroup := app.Group("/offer")

	// Candidates respond through an unauthenticated endpoint, the offer ID
	// arrives out of band in the email
	offerGroup.Patch("/respond", offerValidators.OfferResponse(), offerControllers.RespondToOffer)

	employerGroup := offerGroup.Group("", middleware.JWTMiddleware, middleware.RequireRole(models.RoleEmployer))
	employerGroup.Post("/create", offerValidators.CreateOffer(),
		middleware.CheckPermissionMiddleware("create-offer"), offerControllers.CreateOffer)
	employerGroup.Post("/:id/resend", offerControllers.ResendOffer)
	employerGroup.Get("/list", commonValidators.Pagination(), offerControllers.ListOffers)
}
