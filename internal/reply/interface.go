package reply

import (
	"context"

	"missed-call-recovery/internal/model"
	"missed-call-recovery/pkg/gcalendar"
	"missed-call-recovery/pkg/sms"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessReply classifies and handles one inbound SMS message end to
	// end: lead lookup, command dispatch, persistence, outbound reply.
	ProcessReply(ctx context.Context, sc model.Scope, input ProcessReplyInput) (ProcessReplyOutput, error)
}

// SMSSender sends one outbound SMS. Satisfied by *sms.Client.
type SMSSender interface {
	SendMessage(ctx context.Context, to, body string) (*sms.SendResponse, error)
}

// CalendarBooker creates calendar events. Satisfied by *gcalendar.Client.
type CalendarBooker interface {
	BookAppointment(ctx context.Context, req gcalendar.BookingRequest) (*gcalendar.Booking, error)
}
