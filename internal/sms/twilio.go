package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioClient sends SMS messages through the Twilio REST API.
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioClient creates a Twilio-backed SMS client.
func NewTwilioClient(accountSID, authToken, fromNumber string) *TwilioClient {
	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    twilioAPIBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendSMS sends a single message. A non-2xx response from Twilio is
// returned as an error carrying the response body.
func (tc *TwilioClient) SendSMS(ctx context.Context, toPhoneNumber, message string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", tc.baseURL, tc.accountSID)

	data := url.Values{}
	data.Set("To", toPhoneNumber)
	data.Set("From", tc.fromNumber)
	data.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create Twilio SMS request: %w", err)
	}

	req.SetBasicAuth(tc.accountSID, tc.authToken)
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Twilio SMS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Twilio API returned non-success status: %d - %s", resp.StatusCode, string(body))
	}

	return nil
}
