package documentController

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/database"
	"github.com/TechnetDev/kaamhai-backend-sub001/middleware"
	"github.com/TechnetDev/kaamhai-backend-sub001/models"
	"github.com/TechnetDev/kaamhai-backend-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var allowedDocumentTypes = map[string]bool{
	models.DocumentAadhaarCard: true,
	models.DocumentFacePhoto:   true,
	models.DocumentPanCard:     true,
}

// UploadDocument stores a single-sided document (face photo, PAN) and marks
// the entry completed. The write is the same keyed upsert the verification
// flow uses, so upload and verification never clobber each other's rows.
func UploadDocument(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	documentType := c.FormValue("documentType")
	if !allowedDocumentTypes[documentType] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document type!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Document file is required!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	uri, err := utils.StoreDocumentFile(file, fmt.Sprintf("employee-%d/%s", employeeID, documentType))
	if err != nil {
		log.Printf("Failed to store %s for employee %d: %v", documentType, employeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document!", nil)
	}

	doc := models.EmployeeDocument{
		EmployeeID:  employeeID,
		Type:        documentType,
		IsCompleted: true,
		Front: models.StoredFile{
			URI:         uri,
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
		},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_completed":       true,
			"front_uri":          uri,
			"front_filename":     file.Filename,
			"front_content_type": file.Header.Get("Content-Type"),
			"updated_at":         time.Now(),
		}),
	}).Create(&doc).Error; err != nil {
		log.Printf("Failed to save %s document for employee %d: %v", documentType, employeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document uploaded successfully.", fiber.Map{
		"type": documentType,
		"uri":  uri,
	})
}

// ReplaceDocument stores front and back sides of a card-type document
// (Aadhaar, PAN). Either side may be omitted to keep the stored one.
func ReplaceDocument(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	documentType := c.FormValue("documentType")
	if !allowedDocumentTypes[documentType] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document type!", nil)
	}

	frontFile, frontErr := c.FormFile("front")
	backFile, backErr := c.FormFile("back")
	if frontErr != nil && backErr != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one of front/back is required!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	if err := db.Where("id = ? AND is_deleted = false", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	updates := map[string]interface{}{
		"is_completed": true,
		"updated_at":   time.Now(),
	}
	doc := models.EmployeeDocument{
		EmployeeID:  employeeID,
		Type:        documentType,
		IsCompleted: true,
	}

	if frontErr == nil {
		uri, err := utils.StoreDocumentFile(frontFile, fmt.Sprintf("employee-%d/%s/front", employeeID, documentType))
		if err != nil {
			log.Printf("Failed to store %s front for employee %d: %v", documentType, employeeID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document!", nil)
		}
		doc.Front = models.StoredFile{URI: uri, Filename: frontFile.Filename, ContentType: frontFile.Header.Get("Content-Type")}
		updates["front_uri"] = uri
		updates["front_filename"] = frontFile.Filename
		updates["front_content_type"] = frontFile.Header.Get("Content-Type")
	}
	if backErr == nil {
		uri, err := utils.StoreDocumentFile(backFile, fmt.Sprintf("employee-%d/%s/back", employeeID, documentType))
		if err != nil {
			log.Printf("Failed to store %s back for employee %d: %v", documentType, employeeID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document!", nil)
		}
		doc.Back = models.StoredFile{URI: uri, Filename: backFile.Filename, ContentType: backFile.Header.Get("Content-Type")}
		updates["back_uri"] = uri
		updates["back_filename"] = backFile.Filename
		updates["back_content_type"] = backFile.Header.Get("Content-Type")
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "type"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&doc).Error; err != nil {
		log.Printf("Failed to save %s document for employee %d: %v", documentType, employeeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document replaced successfully.", fiber.Map{
		"type":  documentType,
		"front": doc.Front,
		"back":  doc.Back,
	})
}

// ListDocuments returns all document entries of the authenticated employee.
func ListDocuments(c *fiber.Ctx) error {
	employeeID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid employee ID!", nil)
	}

	var docs []models.EmployeeDocument
	if err := database.Database.Db.
		Where("employee_id = ? AND is_deleted = false", employeeID).
		Order("type ASC").
		Find(&docs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch documents!", nil)
	}

	if docs == nil {
		docs = []models.EmployeeDocument{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documents list.", docs)
}
