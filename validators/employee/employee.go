package employeeValidator

import (
	"regexp"
	"strings"

	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// Onboard validator middleware
func Onboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   string `json:"name"`
			Mobile string `json:"mobile"`
			Email  string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if !mobilePattern.MatchString(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}

		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Invalid email!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOnboard", reqData)
		return c.Next()
	}
}

// PersonalInfo validator middleware
func PersonalInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string `json:"name"`
			FatherName    string `json:"fatherName"`
			DOB           string `json:"dob"`
			Gender        string `json:"gender"`
			MaritalStatus string `json:"maritalStatus"`
			Address       string `json:"address"`
			City          string `json:"city"`
			State         string `json:"state"`
			PinCode       string `json:"pinCode"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if err := validate.Var(reqData.DOB, "required,datetime=2006-01-02"); err != nil {
			errors["dob"] = "DOB must be in YYYY-MM-DD format!"
		}

		switch reqData.Gender {
		case "MALE", "FEMALE", "OTHER":
		default:
			errors["gender"] = "Gender must be MALE, FEMALE or OTHER!"
		}

		if reqData.Address == "" {
			errors["address"] = "Address is required!"
		}

		if err := validate.Var(reqData.PinCode, "required,len=6,numeric"); err != nil {
			errors["pinCode"] = "Pin code must be 6 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPersonalInfo", reqData)
		return c.Next()
	}
}

// ProfessionalInfo validator middleware
func ProfessionalInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Designation     string `json:"designation"`
			Department      string `json:"department"`
			ExperienceYears int    `json:"experienceYears"`
			Skills          string `json:"skills"`
			MonthlySalary   uint   `json:"monthlySalary"`
			JoiningDate     string `json:"joiningDate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Designation) == "" {
			errors["designation"] = "Designation is required!"
		}

		if reqData.ExperienceYears < 0 || reqData.ExperienceYears > 60 {
			errors["experienceYears"] = "Experience years must be between 0 and 60!"
		}

		if reqData.JoiningDate != "" {
			if err := validate.Var(reqData.JoiningDate, "datetime=2006-01-02"); err != nil {
				errors["joiningDate"] = "Joining date must be in YYYY-MM-DD format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfessionalInfo", reqData)
		return c.Next()
	}
}
