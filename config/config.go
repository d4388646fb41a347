package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Identity verification vendor (Aadhaar OKYC)
	CashfreeBaseURL      string
	CashfreeClientID     string
	CashfreeClientSecret string

	// Payment gateway
	PaymentBaseURL       string
	PaymentClientID      string
	PaymentClientSecret  string
	PaymentWebhookSecret string

	LocalTextApi    string
	LocalTextApiUrl string

	SendGridApiKey string
	EmailSender    string

	FcmServerKey string

	// Object storage bucket for employee documents. Falls back to
	// local UploadDir when BucketProjectID is empty.
	BucketProjectID string
	BucketApiKey    string
	BucketName      string
	UploadDir       string

	AdminEmail    string
	AdminPassword string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		CashfreeBaseURL:      getEnv("CASHFREE_BASE_URL", "https://api.cashfree.com/verification/"),
		CashfreeClientID:     getEnv("CASHFREE_CLIENT_ID", ""),
		CashfreeClientSecret: getEnv("CASHFREE_CLIENT_SECRET", ""),

		PaymentBaseURL:       getEnv("PAYMENT_BASE_URL", "https://api.cashfree.com/pg/"),
		PaymentClientID:      getEnv("PAYMENT_CLIENT_ID", ""),
		PaymentClientSecret:  getEnv("PAYMENT_CLIENT_SECRET", ""),
		PaymentWebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", ""),

		LocalTextApi:    getEnv("LOCAL_SMS_API_KEY", ""),
		LocalTextApiUrl: getEnv("LOCAL_SMS_API_URL", "https://www.fast2sms.com/dev/bulkV2"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@kaamhai.in"),

		FcmServerKey: getEnv("FCM_SERVER_KEY", ""),

		BucketProjectID: getEnv("BUCKET_PROJECT_ID", ""),
		BucketApiKey:    getEnv("BUCKET_API_KEY", ""),
		BucketName:      getEnv("BUCKET_NAME", "employee-documents"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@kaamhai.in"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.CashfreeClientID == "" {
		log.Println("Warning: CASHFREE_CLIENT_ID not set. Aadhaar verification will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
