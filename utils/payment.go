package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"

	"github.com/go-resty/resty/v2"
)

// PaymentClient talks to the payment gateway's order API.
type PaymentClient struct {
	http *resty.Client
}

func NewPaymentClient(cfg *config.Config) *PaymentClient {
	client := resty.New().
		SetBaseURL(cfg.PaymentBaseURL).
		SetTimeout(15 * time.Second).
		SetHeader("x-client-id", cfg.PaymentClientID).
		SetHeader("x-client-secret", cfg.PaymentClientSecret).
		SetHeader("x-api-version", "2023-08-01").
		SetHeader("Content-Type", "application/json")

	return &PaymentClient{http: client}
}

type gatewayOrderResponse struct {
	CfOrderID      json.Number `json:"cf_order_id"`
	OrderID        string      `json:"order_id"`
	PaymentSession string      `json:"payment_session_id"`
	OrderStatus    string      `json:"order_status"`
}

// CreateOrder raises an order with the gateway. Amount is in paise;
// the gateway API wants rupees.
func (c *PaymentClient) CreateOrder(orderID string, amount uint, businessID uint, businessMobile string) (gatewayOrderID, sessionID string, err error) {
	body := map[string]interface{}{
		"order_id":       orderID,
		"order_amount":   float64(amount) / 100.0,
		"order_currency": "INR",
		"customer_details": map[string]string{
			"customer_id":    fmt.Sprintf("business_%d", businessID),
			"customer_phone": businessMobile,
		},
	}

	resp, err := c.http.R().SetBody(body).Post("orders")
	if err != nil {
		return "", "", fmt.Errorf("failed to reach payment gateway: %v", err)
	}

	if resp.StatusCode() != 200 {
		return "", "", &VendorError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var parsed gatewayOrderResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", "", fmt.Errorf("failed to parse gateway response: %v", err)
	}

	return parsed.CfOrderID.String(), parsed.PaymentSession, nil
}

// VerifyWebhookSignature checks the gateway's webhook HMAC. The signature
// is base64(HMAC-SHA256(timestamp + rawBody, secret)).
func VerifyWebhookSignature(rawBody []byte, timestamp, signature string) bool {
	secret := config.AppConfig.PaymentWebhookSecret
	if secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
