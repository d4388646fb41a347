package authRoutes

import (
	authControllers "github.com/TechnetDev/kaamhai-backend-sub001/controllers/auth"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	authValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/auth"
	commonValidators "github.com/TechnetDev/kaamhai-backend-sub001/validators/common"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/business/signup", authValidators.Signup(), authControllers.BusinessSignup)
	authGroup.Post("/business/login", authValidators.Login(), authControllers.BusinessLogin)
	authGroup.Post("/send/otp", middleware.RateLimit(rate.Limit(1), 3), authValidators.SendOtp(), authControllers.SendLoginOtp)
	authGroup.Patch("/verify/otp", authValidators.VerifyOtp(), authControllers.VerifyLoginOtp)
	authGroup.Post("/admin/login", authValidators.Login(), authControllers.AdminLogin)
	authGroup.Get("/login/history", commonValidators.Pagination(), middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
