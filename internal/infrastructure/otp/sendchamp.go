package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrVerificationFailed = errors.New("otp verification failed")

// Sendchamp is a thin client for the Sendchamp verification API: send a
// numeric code by email or SMS, then confirm it against the returned
// reference.
type Sendchamp struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSendchamp(baseURL, apiKey string) *Sendchamp {
	return &Sendchamp{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type sendOTPRequest struct {
	Channel              string `json:"channel"`
	Sender               string `json:"sender"`
	TokenType            string `json:"token_type"`
	TokenLength          int    `json:"token_length"`
	ExpirationTime       int    `json:"expiration_time"` // minutes
	CustomerEmailAddress string `json:"customer_email_address,omitempty"`
	CustomerMobileNumber string `json:"customer_mobile_number,omitempty"`
}

type otpResponse struct {
	Status string `json:"status"`
	Data   struct {
		Reference string `json:"reference"`
	} `json:"data"`
	Message string `json:"message"`
}

func (s *Sendchamp) post(ctx context.Context, path string, payload any, out *otpResponse) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("sendchamp: decode response: %w", err)
	}
	if res.StatusCode >= 300 {
		return fmt.Errorf("sendchamp: %s (http %d)", out.Message, res.StatusCode)
	}
	return nil
}

func (s *Sendchamp) sendOTP(ctx context.Context, req sendOTPRequest) (string, error) {
	var out otpResponse
	if err := s.post(ctx, "/verification/create", req, &out); err != nil {
		return "", err
	}
	if out.Data.Reference == "" {
		return "", fmt.Errorf("sendchamp: empty verification reference (%s)", out.Message)
	}
	return out.Data.Reference, nil
}

func (s *Sendchamp) SendEmailOTP(ctx context.Context, email string) (string, error) {
	return s.sendOTP(ctx, sendOTPRequest{
		Channel:              "email",
		Sender:               "Sendchamp",
		TokenType:            "numeric",
		TokenLength:          6,
		ExpirationTime:       5,
		CustomerEmailAddress: email,
	})
}

func (s *Sendchamp) SendSMSOTP(ctx context.Context, mobileNumber string) (string, error) {
	return s.sendOTP(ctx, sendOTPRequest{
		Channel:              "sms",
		Sender:               "Sendchamp",
		TokenType:            "numeric",
		TokenLength:          6,
		ExpirationTime:       5,
		CustomerMobileNumber: mobileNumber,
	})
}

func (s *Sendchamp) ConfirmOTP(ctx context.Context, reference, code string) error {
	payload := map[string]string{
		"verification_reference": reference,
		"verification_code":      code,
	}
	var out otpResponse
	if err := s.post(ctx, "/verification/confirm", payload, &out); err != nil {
		return err
	}
	if out.Status != "success" {
		return ErrVerificationFailed
	}
	return nil
}
