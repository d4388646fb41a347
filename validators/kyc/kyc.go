package kycValidator

import (
	"regexp"

	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

var aadhaarPattern = regexp.MustCompile(`^\d{12}$`)

// SendAadhaarOtp validator middleware
func SendAadhaarOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AadhaarNumber string `json:"aadhaarNumber"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !aadhaarPattern.MatchString(reqData.AadhaarNumber) {
			errors["aadhaarNumber"] = "Aadhaar number must be 12 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAadhaar", reqData)
		return c.Next()
	}
}

// VerifyAadhaarOtp validator middleware
func VerifyAadhaarOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReferenceID   string `json:"referenceId"`
			Otp           string `json:"otp"`
			AadhaarNumber string `json:"aadhaarNumber"`
			CandidateID   uint   `json:"candidateId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ReferenceID == "" {
			errors["referenceId"] = "Reference ID is required!"
		}

		if !regexp.MustCompile(`^\d{6}$`).MatchString(reqData.Otp) {
			errors["otp"] = "OTP must be 6 digits!"
		}

		if !aadhaarPattern.MatchString(reqData.AadhaarNumber) {
			errors["aadhaarNumber"] = "Aadhaar number must be 12 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("verifyAadhaarOtp", reqData)
		return c.Next()
	}
}
