package kycRoutes

import (
	kycControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/kyc"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	kycValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/kyc"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

func SetupKycRoutes(app *fiber.App) {
	kycGroup := app.Group("/kyc", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleEmployee, models.RoleEmployer))

	kycGroup.Post("/aadhaar/send-otp", middleware.RateLimit(rate.Limit(1), 3),
		kycValidators.SendAadhaarOtp(), kycControllers.SendAadhaarOtp)
	kycGroup.Post("/aadhaar/verify-otp", kycValidators.VerifyAadhaarOtp(), kycControllers.VerifyAadhaarOtp)
	kycGroup.Get("/status", kycControllers.GetVerificationStatus)
	kycGroup.Get("/aadhaar", kycControllers.GetAadhaarDetails)
}
