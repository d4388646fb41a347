package main

import (
	"log"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	adminRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/adminRoutes"
	advanceRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/advanceRoutes"
	authRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/authRoutes"
	documentRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/documentRoutes"
	employeeRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/employeeRoutes"
	jobRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/jobRoutes"
	kycRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/kycRoutes"
	leaveRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/leaveRoutes"
	notificationRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/notificationRoutes"
	offerRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/offerRoutes"
	subscriptionRoutes "github.com/TechnetDev/kaamhai-backend-sub001/routers/subscriptionRoutes"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded documents and generated offer letters
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	kycRoutes.SetupKycRoutes(app)
	employeeRoutes.SetupEmployeeRoutes(app)
	documentRoutes.SetupDocumentRoutes(app)
	leaveRoutes.SetupLeaveRoutes(app)
	advanceRoutes.SetupAdvanceRoutes(app)
	offerRoutes.SetupOfferRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeSubscriptionScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
