package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"

	"github.com/stretchr/testify/assert"
)

func signWebhook(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	config.AppConfig = &config.Config{PaymentWebhookSecret: "whsec_test"}

	body := []byte(`{"data":{"order":{"order_id":"KAAMHAI-1-abc"}}}`)
	timestamp := "1724800000"

	valid := signWebhook("whsec_test", timestamp, body)
	assert.True(t, VerifyWebhookSignature(body, timestamp, valid))

	assert.False(t, VerifyWebhookSignature(body, timestamp, "tampered"))
	assert.False(t, VerifyWebhookSignature([]byte(`{}`), timestamp, valid))
	assert.False(t, VerifyWebhookSignature(body, "1724800001", valid))
}

func TestVerifyWebhookSignatureUnconfigured(t *testing.T) {
	config.AppConfig = &config.Config{}

	// Without a secret every signature is rejected
	assert.False(t, VerifyWebhookSignature([]byte("{}"), "0", "sig"))
}

func TestNumberToString(t *testing.T) {
	assert.Equal(t, "21637861", NumberToString(float64(21637861)))
	assert.Equal(t, "21637861", NumberToString("21637861"))
	assert.Equal(t, "560001", NumberToString(float64(560001)))
	assert.Equal(t, "", NumberToString(nil))
}
