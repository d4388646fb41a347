package offerValidator

import (
	"strings"

	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateOffer validator middleware
func CreateOffer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CandidateName  string `json:"candidateName"`
			CandidateEmail string `json:"candidateEmail"`
			Designation    string `json:"designation"`
			MonthlySalary  uint   `json:"monthlySalary"`
			JoiningDate    string `json:"joiningDate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.CandidateName)) < 2 {
			errors["candidateName"] = "Candidate name must be at least 2 characters long!"
		}

		if err := validate.Var(reqData.CandidateEmail, "required,email"); err != nil {
			errors["candidateEmail"] = "Invalid candidate email!"
		}

		if strings.TrimSpace(reqData.Designation) == "" {
			errors["designation"] = "Designation is required!"
		}

		if reqData.MonthlySalary == 0 {
			errors["monthlySalary"] = "Monthly salary is required!"
		}

		if err := validate.Var(reqData.JoiningDate, "required,datetime=2006-01-02"); err != nil {
			errors["joiningDate"] = "Joining date must be in YYYY-MM-DD format!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateOffer", reqData)
		return c.Next()
	}
}

// OfferResponse validator middleware for the candidate's decision
func OfferResponse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OfferID uint   `json:"offerId"`
			Status  string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OfferID == 0 {
			errors["offerId"] = "Offer ID is required!"
		}

		if reqData.Status == "" {
			errors["status"] = "Status is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOfferResponse", reqData)
		return c.Next()
	}
}
