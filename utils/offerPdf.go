package utils

import (
	"bytes"
	"fmt"

	"github.com/TechnetDev/kaamhai-backend-sub001/models"

	"github.com/go-pdf/fpdf"
)

// GenerateOfferLetterPDF renders an offer letter as PDF bytes.
func GenerateOfferLetterPDF(offer *models.OfferLetter, businessName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, businessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Offer of Employment", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", offer.CreatedAt.Format("02 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.MultiCell(0, 6, fmt.Sprintf("Dear %s,", offer.CandidateName), "", "L", false)
	pdf.Ln(2)

	bodyText := fmt.Sprintf(
		"We are pleased to offer you the position of %s at %s. "+
			"Your monthly salary will be Rs. %d and your expected date of joining is %s.",
		offer.Designation, businessName, offer.MonthlySalary,
		offer.JoiningDate.Format("02 January 2006"),
	)
	pdf.MultiCell(0, 6, bodyText, "", "L", false)
	pdf.Ln(2)

	pdf.MultiCell(0, 6,
		"This offer is contingent upon completion of identity verification and document "+
			"submission through the Kaamhai app. Please confirm your acceptance.",
		"", "L", false)
	pdf.Ln(10)

	pdf.CellFormat(0, 6, "Sincerely,", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, businessName, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render offer letter: %v", err)
	}
	return buf.Bytes(), nil
}
