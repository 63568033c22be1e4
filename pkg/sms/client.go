package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client is a Twilio Messages API client.
type Client struct {
	accountSID string
	authToken  string
	fromNumber string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new SMS client sending from the given number.
func NewClient(accountSID, authToken, fromNumber string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		apiURL:     "https://api.twilio.com/2010-04-01",
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// AuthToken returns the token used for webhook signature validation.
func (c *Client) AuthToken() string {
	return c.authToken
}

// SendMessage sends an SMS to the given E.164 number.
func (c *Client) SendMessage(ctx context.Context, to, body string) (*SendResponse, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.apiURL, c.accountSID)

	form := url.Values{}
	form.Set("From", c.fromNumber)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	var sendResp SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return nil, fmt.Errorf("failed to decode send response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("sms API error %d: %s", resp.StatusCode, sendResp.ErrorMessage)
	}

	return &sendResp, nil
}
