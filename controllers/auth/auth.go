package authController

import (
	"errors"
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BusinessSignup registers an employer account.
func BusinessSignup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name      string `json:"name"`
		OwnerName string `json:"ownerName"`
		Email     string `json:"email"`
		Mobile    string `json:"mobile"`
		Password  string `json:"password"`
		GstNumber string `json:"gstNumber"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid signup data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.Business{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newBusiness := models.Business{
		Name:      reqData.Name,
		OwnerName: reqData.OwnerName,
		Email:     reqData.Email,
		Mobile:    reqData.Mobile,
		Password:  string(hashedPassword),
		GstNumber: reqData.GstNumber,
	}

	if err := db.Create(&newBusiness).Error; err != nil {
		log.Printf("Error saving business to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register business!", nil)
	}

	if err := SeedPermissions(db, models.RoleEmployer, newBusiness.ID); err != nil {
		log.Printf("Error seeding permissions: %v", err)
	}

	utils.SendWelcomeEmail(newBusiness.Email, newBusiness.Name)

	newBusiness.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Business registered successfully.", newBusiness)
}

// BusinessLogin authenticates an employer and issues a JWT.
func BusinessLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid login data!", nil)
	}

	db := database.Database.Db

	var business models.Business
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&business).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if business.IsBlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is blocked. Contact support.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(business.Password), []byte(reqData.Password)); err != nil {
		db.Model(&business).Update("failed_login_attempts", business.FailedLoginAttempts+1)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(business.ID, models.RoleEmployer, business.Name, business.Mobile, business.ID)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	now := time.Now()
	db.Model(&business).Updates(map[string]interface{}{"last_login": now, "failed_login_attempts": 0})

	tracking := models.LoginTracking{
		AccountID: business.ID,
		Role:      models.RoleEmployer,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		Timestamp: now,
	}
	if err := db.Create(&tracking).Error; err != nil {
		log.Printf("Failed to record login tracking: %v", err)
	}

	business.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":    token,
		"business": business,
	})
}

// SendLoginOtp issues a login OTP to an employee's mobile.
func SendLoginOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOtp").(*struct {
		Mobile string `json:"mobile"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	code := utils.GenerateOTP()
	otp := models.OTP{
		Mobile:      reqData.Mobile,
		Code:        code,
		ExpiresAt:   time.Now().Add(10 * time.Minute),
		Description: "employee login",
	}
	if err := db.Create(&otp).Error; err != nil {
		log.Printf("Failed to store OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	if err := utils.SendOTPToMobile(reqData.Mobile, code); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// VerifyLoginOtp verifies the login OTP and issues an employee JWT. An
// unknown mobile gets a minimal employee record so document and profile
// completion can begin right after first login.
func VerifyLoginOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOtp").(*struct {
		Mobile string `json:"mobile"`
		Otp    string `json:"otp"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var otp models.OTP
	err := db.Where("mobile = ? AND code = ? AND is_used = false AND is_deleted = false", reqData.Mobile, reqData.Otp).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid OTP!", nil)
	}
	if time.Now().After(otp.ExpiresAt) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "OTP has expired!", nil)
	}

	db.Model(&otp).Update("is_used", true)

	var employee models.Employee
	err = db.Where("mobile = ? AND is_deleted = false", reqData.Mobile).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		employee = models.Employee{Mobile: reqData.Mobile}
		if err := db.Create(&employee).Error; err != nil {
			log.Printf("Failed to create employee for %s: %v", reqData.Mobile, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
		}
		if err := SeedPermissions(db, models.RoleEmployee, employee.ID); err != nil {
			log.Printf("Error seeding permissions: %v", err)
		}
	} else if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	if employee.IsBlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is blocked. Contact support.", nil)
	}

	token, err := middleware.GenerateJWT(employee.ID, models.RoleEmployee, employee.Name, employee.Mobile, employee.BusinessID)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	now := time.Now()
	db.Model(&employee).Update("last_login", now)

	tracking := models.LoginTracking{
		AccountID: employee.ID,
		Role:      models.RoleEmployee,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		Timestamp: now,
	}
	if err := db.Create(&tracking).Error; err != nil {
		log.Printf("Failed to record login tracking: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":    token,
		"employee": employee,
	})
}

// AdminLogin authenticates the platform admin configured via environment.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid login data!", nil)
	}

	cfg := config.AppConfig
	if cfg.AdminPassword == "" || reqData.Email != cfg.AdminEmail || reqData.Password != cfg.AdminPassword {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(1, models.RoleAdmin, "Admin", "", 0)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{"token": token})
}

// LoginHistoryList returns paginated login tracking entries for the
// authenticated account.
func LoginHistoryList(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var history []models.LoginTracking
	var total int64

	db := database.Database.Db
	if err := db.Where("account_id = ? AND role = ? AND is_deleted = ?", accountID, role, false).
		Offset(offset).
		Limit(*reqData.Limit).
		Order("created_at DESC").
		Find(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Access Denied!", nil)
	}

	db.Model(&models.LoginTracking{}).Where("account_id = ? AND role = ? AND is_deleted = ?", accountID, role, false).Count(&total)

	response := map[string]interface{}{
		"history": history,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history.", response)
}

// SeedPermissions seeds default permissions for a given role and account ID
func SeedPermissions(db *gorm.DB, role string, accountID uint) error {
	permissions := getDefaultPermissions(role)

	var records []models.Permission
	for _, p := range permissions {
		records = append(records, models.Permission{
			AccountID:  accountID,
			Role:       role,
			Permission: p,
		})
	}

	if err := db.Create(&records).Error; err != nil {
		return err
	}

	return nil
}

func getDefaultPermissions(role string) []string {
	if role == models.RoleEmployer {
		return []string{
			"onboard-employee",
			"review-leave",
			"review-advance",
			"create-offer",
			"post-job",
			"manage-subscription",
		}
	}
	return []string{
		"upload-document",
		"verify-aadhaar",
		"apply-leave",
		"request-advance",
		"apply-job",
	}
}
