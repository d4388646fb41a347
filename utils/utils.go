package utils

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// SendOTPToMobile delivers a login OTP over the SMS gateway. DLT template
// variables carry the OTP and its validity window in minutes.
func SendOTPToMobile(mobile, otp string) error {
	cfg := config.AppConfig

	if cfg.LocalTextApi == "" {
		log.Printf("SMS gateway not configured, skipping OTP delivery to %s", mobile)
		return nil
	}

	variables := fmt.Sprintf("%s|10", otp)

	reqURL := fmt.Sprintf(
		"%s?authorization=%s&route=dlt&sender_id=KAMHAI&message=197302&variables_values=%s&flash=0&numbers=%s",
		cfg.LocalTextApiUrl, cfg.LocalTextApi, url.QueryEscape(variables), mobile,
	)

	resp, err := http.Get(reqURL)
	if err != nil {
		log.Printf("Error while sending OTP: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Failed to send OTP, response code: %d", resp.StatusCode)
		return fmt.Errorf("failed to send OTP, code: %d", resp.StatusCode)
	}

	log.Println("OTP sent successfully to", mobile)
	return nil
}
