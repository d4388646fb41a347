package utils

import (
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email through SendGrid. attachment may be nil.
func SendEmail(toEmail, toName, subject, htmlBody string, attachment *mail.Attachment) error {
	cfg := config.AppConfig
	if cfg.SendGridApiKey == "" {
		log.Printf("SendGrid not configured, skipping email %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Kaamhai", cfg.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)
	if attachment != nil {
		message.AddAttachment(attachment)
	}

	client := sendgrid.NewSendClient(cfg.SendGridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	return nil
}

// PdfAttachment wraps raw PDF bytes for SendGrid.
func PdfAttachment(filename string, pdf []byte) *mail.Attachment {
	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(pdf))
	attachment.SetType("application/pdf")
	attachment.SetFilename(filename)
	attachment.SetDisposition("attachment")
	return attachment
}

// HTML wrapper shared by the notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #14213D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #14213D; line-height: 1.6; }
			.content h2 { color: #14213D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FCA311; margin: 20px 0; }
			.status-badge { display: inline-block; padding: 4px 8px; border-radius: 4px; font-size: 12px; font-weight: bold; color: white; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>KAAMHAI</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Kaamhai. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Kaamhai"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Kaamhai</strong>! Your business account has been created.</p>
		<p>Onboard your employees, verify their identity and manage leaves, advances and offer letters from one place.</p>
	`, name)

	go SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body), nil)
}

// SendOfferLetterEmail mails the generated offer letter PDF to the candidate.
func SendOfferLetterEmail(email, candidateName, businessName, designation string, pdf []byte) error {
	subject := fmt.Sprintf("Offer Letter from %s", businessName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p><strong>%s</strong> is pleased to offer you the position of <strong>%s</strong>.</p>
		<p>Please find your offer letter attached. You can accept or decline the offer from the link shared by your employer.</p>
	`, candidateName, businessName, designation)

	return SendEmail(email, candidateName, subject, getEmailTemplate("You Have an Offer!", body),
		PdfAttachment("offer-letter.pdf", pdf))
}

func SendLeaveStatusEmail(email, name, leaveType, status, note string) {
	statusColor := "#FFC107"
	if status == "APPROVED" {
		statusColor = "#28A745"
	}
	if status == "REJECTED" {
		statusColor = "#DC3545"
	}

	subject := fmt.Sprintf("Leave Request %s", status)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your %s leave request has been reviewed.</p>
		<div style="margin: 20px 0;">
			<span class="status-badge" style="background-color: %s;">%s</span>
		</div>
		<p>%s</p>
	`, name, leaveType, statusColor, status, note)

	go SendEmail(email, name, subject, getEmailTemplate("Leave Request Update", body), nil)
}

func SendAdvanceStatusEmail(email, name string, amount uint, status string) {
	subject := fmt.Sprintf("Advance Payment %s", status)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your advance payment request of <strong>&#8377;%d</strong> is now <strong>%s</strong>.</p>
	`, name, amount, status)

	go SendEmail(email, name, subject, getEmailTemplate("Advance Payment Update", body), nil)
}

// SendSubscriptionExpiryReminder is sent two days before a subscription lapses.
func SendSubscriptionExpiryReminder(email, name, planName string, expiresAt *time.Time) {
	expiryStr := "soon"
	if expiresAt != nil {
		expiryStr = expiresAt.Format("January 2, 2006")
	}

	subject := "Your Kaamhai Subscription is Expiring Soon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your subscription to the <strong>%s</strong> plan expires on <strong>%s</strong>.</p>
		<div class="info-box">
			Renew before expiry to keep onboarding and verifying employees without interruption.
		</div>
	`, name, planName, expiryStr)

	go SendEmail(email, name, subject, getEmailTemplate("Subscription Expiring Soon", body), nil)
}

func SendSubscriptionExpiredEmail(email, name, planName string) {
	subject := "Your Kaamhai Subscription Has Expired"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your subscription to the <strong>%s</strong> plan has expired.</p>
		<p>Renew from your dashboard to restore full access.</p>
	`, name, planName)

	go SendEmail(email, name, subject, getEmailTemplate("Subscription Expired", body), nil)
}
