package kycController

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rawToMap decodes a vendor payload for the response envelope. Falls back
// to the raw string when the body is not JSON.
func rawToMap(body []byte) interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return string(body)
	}
	return m
}

// SendAadhaarOtp forwards the Aadhaar number to the verification vendor's
// OTP endpoint and returns the vendor response (carries ref_id) unmodified.
func SendAadhaarOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAadhaar").(*struct {
		AadhaarNumber string `json:"aadhaarNumber"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Aadhaar data!", nil)
	}

	vendor := utils.NewCashfreeClient(config.AppConfig)
	_, rawBody, err := vendor.RequestAadhaarOTP(reqData.AadhaarNumber)
	if err != nil {
		var vendorErr *utils.VendorError
		if errors.As(err, &vendorErr) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false,
				"Failed to send Aadhaar OTP!", rawToMap(vendorErr.Body))
		}
		log.Printf("Aadhaar OTP request failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send Aadhaar OTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aadhaar OTP sent successfully.", rawToMap(rawBody))
}

// VerifyAadhaarOtp submits the OTP to the vendor and, on a VALID outcome,
// records the aadhaarCard document entry and an audit record. The document
// write is a keyed upsert on (employee_id, type), so repeated or racing
// verifications never create duplicate entries.
func VerifyAadhaarOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("verifyAadhaarOtp").(*struct {
		ReferenceID   string `json:"referenceId"`
		Otp           string `json:"otp"`
		AadhaarNumber string `json:"aadhaarNumber"`
		CandidateID   uint   `json:"candidateId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The employee being verified: explicit candidateId when an employer
	// drives the flow, otherwise the authenticated employee.
	employeeID := reqData.CandidateID
	if employeeID == 0 {
		if id, ok := c.Locals("accountId").(uint); ok {
			employeeID = id
		}
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	vendor := utils.NewCashfreeClient(config.AppConfig)
	response, rawBody, err := vendor.VerifyAadhaarOTP(reqData.ReferenceID, reqData.Otp)
	if err != nil {
		var vendorErr *utils.VendorError
		if errors.As(err, &vendorErr) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false,
				"OTP verification failed!", rawToMap(vendorErr.Body))
		}
		log.Printf("Aadhaar OTP verify failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "OTP verification failed!", nil)
	}

	// A 200 with a non-VALID status is a failed verification, not a system
	// error. The vendor payload (including its error code) goes back as-is
	// and the document record stays untouched.
	if response.Status != "VALID" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Aadhaar verification failed.", rawToMap(rawBody))
	}

	doc := models.EmployeeDocument{
		EmployeeID:    employee.ID,
		Type:          models.DocumentAadhaarCard,
		IsVerified:    true,
		IsCompleted:   true,
		AadhaarNumber: reqData.AadhaarNumber,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_verified":    true,
			"is_completed":   true,
			"aadhaar_number": reqData.AadhaarNumber,
			"updated_at":     time.Now(),
		}),
	}).Create(&doc).Error; err != nil {
		log.Printf("Failed to save aadhaarCard document for employee %d: %v", employee.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save Aadhaar details!", nil)
	}

	// Audit record is best-effort: verification status is authoritative once
	// the document record is written, so a failed audit write is logged and
	// never alters the response.
	audit := models.AadhaarVerification{
		EmployeeID:  employee.ID,
		RefID:       utils.NumberToString(response.RefID),
		Status:      response.Status,
		Name:        response.Name,
		DOB:         response.DOB,
		YearOfBirth: utils.NumberToString(response.YearOfBirth),
		Gender:      response.Gender,
		CareOf:      response.CareOf,
		Address:     response.Address,
		SplitAddr: models.SplitAddress{
			Country:     response.SplitAddress.Country,
			District:    response.SplitAddress.Dist,
			House:       response.SplitAddress.House,
			Landmark:    response.SplitAddress.Landmark,
			Pincode:     utils.NumberToString(response.SplitAddress.Pincode),
			PostOffice:  response.SplitAddress.Po,
			State:       response.SplitAddress.State,
			Street:      response.SplitAddress.Street,
			Subdistrict: response.SplitAddress.Subdist,
			Vtc:         response.SplitAddress.Vtc,
		},
		MobileHash: response.MobileHash,
		RawPayload: datatypes.JSON(rawBody),
	}
	if err := db.Create(&audit).Error; err != nil {
		log.Printf("[AUDIT] Failed to persist Aadhaar verification audit for employee %d (ref %s): %v",
			employee.ID, audit.RefID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aadhaar OTP verified successfully.", rawToMap(rawBody))
}

// GetVerificationStatus reports the aggregate onboarding completeness for
// the authenticated employee.
func GetVerificationStatus(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	isCompleted, err := utils.IsEmployeeVerified(database.Database.Db, employeeID)
	if err != nil {
		if errors.Is(err, utils.ErrEmployeeNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Verification status.", fiber.Map{
		"employeeID":  employeeID,
		"isCompleted": isCompleted,
	})
}

// GetAadhaarDetails returns the stored aadhaarCard document entry for the
// authenticated employee.
func GetAadhaarDetails(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	var doc models.EmployeeDocument
	err := database.Database.Db.
		Where("employee_id = ? AND type = ? AND is_deleted = false", employeeID, models.DocumentAadhaarCard).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Aadhaar details not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Aadhaar details.", fiber.Map{
		"aadharNumber": doc.AadhaarNumber,
		"isVerified":   doc.IsVerified,
		"isCompleted":  doc.IsCompleted,
		"front":        doc.Front,
		"back":         doc.Back,
	})
}
