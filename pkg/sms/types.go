package sms

// Message is an inbound SMS as delivered by the provider webhook
// (application/x-www-form-urlencoded fields).
type Message struct {
	MessageSID string `form:"MessageSid"`
	From       string `form:"From"`
	To         string `form:"To"`
	Body       string `form:"Body"`
}

// SendResponse is the provider's reply to a send request.
type SendResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}
