package reply

import "errors"

var (
	ErrUnknownSender   = errors.New("no lead for sender phone")
	ErrDuplicateReply  = errors.New("reply already processed")
	ErrSendFailed      = errors.New("failed to send outbound sms")
	ErrCalendarFailure = errors.New("failed to create calendar event")
)
