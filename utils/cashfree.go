package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"

	"github.com/go-resty/resty/v2"
)

// VendorError is returned when the verification vendor answers with a
// non-200 status. Body carries the vendor's raw error payload so handlers
// can surface it to the caller.
type VendorError struct {
	StatusCode int
	Body       []byte
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("vendor returned status %d: %s", e.StatusCode, string(e.Body))
}

// CashfreeClient talks to the identity verification vendor. Credentials
// come from the config struct passed to the constructor, so tests can point
// it at a stub server.
type CashfreeClient struct {
	http *resty.Client
}

func NewCashfreeClient(cfg *config.Config) *CashfreeClient {
	client := resty.New().
		SetBaseURL(cfg.CashfreeBaseURL).
		SetTimeout(15 * time.Second).
		SetHeader("x-client-id", cfg.CashfreeClientID).
		SetHeader("x-client-secret", cfg.CashfreeClientSecret).
		SetHeader("Content-Type", "application/json")

	return &CashfreeClient{http: client}
}

// AadhaarOTPResponse is the vendor's reply to an OTP issue request.
// ref_id arrives as a number or a string depending on the vendor version.
type AadhaarOTPResponse struct {
	RefID   interface{} `json:"ref_id"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
}

// AadhaarVerifyResponse is the vendor's reply to an OTP verify request.
// Status "VALID" means the verification succeeded.
type AadhaarVerifyResponse struct {
	RefID        interface{} `json:"ref_id"`
	Status       string      `json:"status"`
	Message      string      `json:"message"`
	Code         string      `json:"code,omitempty"`
	Name         string      `json:"name"`
	DOB          string      `json:"dob"`
	Gender       string      `json:"gender"`
	Address      string      `json:"address"`
	CareOf       string      `json:"care_of"`
	YearOfBirth  interface{} `json:"year_of_birth"`
	MobileHash   string      `json:"mobile_hash"`
	PhotoLink    string      `json:"photo_link"`
	SplitAddress struct {
		Country  string      `json:"country"`
		Dist     string      `json:"dist"`
		House    string      `json:"house"`
		Landmark string      `json:"landmark"`
		Pincode  interface{} `json:"pincode"`
		Po       string      `json:"po"`
		State    string      `json:"state"`
		Street   string      `json:"street"`
		Subdist  string      `json:"subdist"`
		Vtc      string      `json:"vtc"`
	} `json:"split_address"`
}

// RequestAadhaarOTP forwards the Aadhaar number to the vendor's OTP issue
// endpoint. The raw body is returned alongside the parsed response so the
// handler can hand the vendor payload back to the caller unmodified.
func (c *CashfreeClient) RequestAadhaarOTP(aadhaarNumber string) (*AadhaarOTPResponse, []byte, error) {
	resp, err := c.http.R().
		SetBody(map[string]string{"aadhaar_number": aadhaarNumber}).
		Post("offline-aadhaar/otp")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reach verification vendor: %v", err)
	}

	if resp.StatusCode() != 200 {
		return nil, resp.Body(), &VendorError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var parsed AadhaarOTPResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, resp.Body(), fmt.Errorf("failed to parse vendor response: %v", err)
	}

	return &parsed, resp.Body(), nil
}

// VerifyAadhaarOTP submits the OTP with its correlation ref_id to the
// vendor's verify endpoint. A non-200 status is a VendorError; a 200 with
// a non-VALID status is NOT an error here, callers check Status themselves.
func (c *CashfreeClient) VerifyAadhaarOTP(refID, otp string) (*AadhaarVerifyResponse, []byte, error) {
	resp, err := c.http.R().
		SetBody(map[string]string{"ref_id": refID, "otp": otp}).
		Post("offline-aadhaar/verify")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reach verification vendor: %v", err)
	}

	if resp.StatusCode() != 200 {
		return nil, resp.Body(), &VendorError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	var parsed AadhaarVerifyResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, resp.Body(), fmt.Errorf("failed to parse vendor response: %v", err)
	}

	return &parsed, resp.Body(), nil
}

// NumberToString normalizes vendor fields that arrive as number or string
// (ref_id, pincode, year_of_birth).
func NumberToString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%d", int64(t))
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
