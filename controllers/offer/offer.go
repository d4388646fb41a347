package offerController

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateOffer generates an offer letter PDF, stores it and emails the
// candidate. Created as SENT when email delivery succeeds, DRAFT otherwise.
func CreateOffer(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedCreateOffer").(*struct {
		CandidateName  string `json:"candidateName"`
		CandidateEmail string `json:"candidateEmail"`
		Designation    string `json:"designation"`
		MonthlySalary  uint   `json:"monthlySalary"`
		JoiningDate    string `json:"joiningDate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid offer data!", nil)
	}

	joiningDate, err := time.Parse("2006-01-02", reqData.JoiningDate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid joining date, expected YYYY-MM-DD!", nil)
	}

	db := database.Database.Db

	var business models.Business
	if err := db.Where("id = ? AND is_deleted = false", businessID).First(&business).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Business not found!", nil)
	}

	offer := models.OfferLetter{
		BusinessID:     businessID,
		CandidateName:  reqData.CandidateName,
		CandidateEmail: reqData.CandidateEmail,
		Designation:    reqData.Designation,
		MonthlySalary:  reqData.MonthlySalary,
		JoiningDate:    joiningDate,
		Status:         models.OfferStatusDraft,
	}

	pdf, err := utils.GenerateOfferLetterPDF(&offer, business.Name)
	if err != nil {
		log.Printf("Failed to generate offer letter PDF: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate offer letter!", nil)
	}

	pdfDir := filepath.Join(config.AppConfig.UploadDir, "offers")
	if err := os.MkdirAll(pdfDir, 0o755); err != nil {
		log.Printf("Failed to create offers directory: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store offer letter!", nil)
	}
	pdfPath := filepath.Join(pdfDir, uuid.NewString()+".pdf")
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		log.Printf("Failed to write offer letter PDF: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store offer letter!", nil)
	}
	offer.PdfPath = pdfPath

	if err := utils.SendOfferLetterEmail(offer.CandidateEmail, offer.CandidateName, business.Name, offer.Designation, pdf); err != nil {
		log.Printf("Failed to email offer letter to %s: %v", offer.CandidateEmail, err)
	} else {
		sentAt := time.Now()
		offer.Status = models.OfferStatusSent
		offer.SentAt = &sentAt
	}

	if err := db.Create(&offer).Error; err != nil {
		log.Printf("Failed to create offer letter: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create offer letter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Offer letter created.", offer)
}

// ResendOffer re-sends a draft or already-sent offer letter email.
func ResendOffer(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	offerID, err := c.ParamsInt("id")
	if err != nil || offerID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid offer ID!", nil)
	}

	db := database.Database.Db

	var offer models.OfferLetter
	if err := db.Where("id = ? AND business_id = ? AND is_deleted = false", offerID, businessID).First(&offer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Offer letter not found!", nil)
	}
	if offer.Status == models.OfferStatusAccepted || offer.Status == models.OfferStatusDeclined {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Offer is already responded to!", nil)
	}

	var business models.Business
	if err := db.First(&business, businessID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Business not found!", nil)
	}

	pdf, err := os.ReadFile(offer.PdfPath)
	if err != nil {
		pdf, err = utils.GenerateOfferLetterPDF(&offer, business.Name)
		if err != nil {
			log.Printf("Failed to regenerate offer letter PDF: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load offer letter!", nil)
		}
	}

	if err := utils.SendOfferLetterEmail(offer.CandidateEmail, offer.CandidateName, business.Name, offer.Designation, pdf); err != nil {
		log.Printf("Failed to email offer letter to %s: %v", offer.CandidateEmail, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send offer letter email!", nil)
	}

	sentAt := time.Now()
	offer.Status = models.OfferStatusSent
	offer.SentAt = &sentAt
	if err := db.Save(&offer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update offer letter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Offer letter sent.", offer)
}

// RespondToOffer records the candidate's accept or decline decision.
func RespondToOffer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOfferResponse").(*struct {
		OfferID uint   `json:"offerId"`
		Status  string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid response data!", nil)
	}

	if reqData.Status != models.OfferStatusAccepted && reqData.Status != models.OfferStatusDeclined {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be ACCEPTED or DECLINED!", nil)
	}

	db := database.Database.Db

	var offer models.OfferLetter
	if err := db.Where("id = ? AND is_deleted = false", reqData.OfferID).First(&offer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Offer letter not found!", nil)
	}
	if offer.Status != models.OfferStatusSent {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Offer is not open for response!", nil)
	}

	respondedAt := time.Now()
	offer.Status = reqData.Status
	offer.RespondedAt = &respondedAt

	if err := db.Save(&offer).Error; err != nil {
		log.Printf("Failed to record offer response %d: %v", offer.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record response!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Offer response recorded.", offer)
}

// ListOffers returns the employer's offer letters.
func ListOffers(c *fiber.Ctx) error {
	businessID, ok := c.Locals("businessId").(uint)
	if !ok || businessID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid business ID!", nil)
	}

	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db
	query := db.Model(&models.OfferLetter{}).Where("business_id = ? AND is_deleted = false", businessID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var offers []models.OfferLetter
	var total int64

	query.Count(&total)
	if err := query.Order("created_at DESC").Offset(offset).Limit(*reqData.Limit).Find(&offers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch offer letters!", nil)
	}

	response := map[string]interface{}{
		"offers": offers,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Offer letters list.", response)
}
