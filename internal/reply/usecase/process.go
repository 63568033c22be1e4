package usecase

import (
	"context"
	"fmt"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/model"
	"missed-call-recovery/internal/reply"
	"missed-call-recovery/pkg/gcalendar"
	"missed-call-recovery/pkg/smstime"
)

const (
	msgStopAck        = "You've been unsubscribed and won't receive more messages. Reply START to opt back in."
	msgResubscribeAck = "You're resubscribed. Reply 1 with a time to book, or CALL for a call back."
	msgCallbackAckFmt = "Got it! Someone from %s will call you back shortly."
)

// ProcessReply handles one inbound SMS end to end.
func (uc *implUseCase) ProcessReply(ctx context.Context, sc model.Scope, input reply.ProcessReplyInput) (reply.ProcessReplyOutput, error) {
	if input.MessageSID != "" {
		if _, dup := uc.seen.Get(input.MessageSID); dup {
			return reply.ProcessReplyOutput{}, reply.ErrDuplicateReply
		}
		uc.seen.Add(input.MessageSID, struct{}{})
	}

	cmd, rest := reply.Classify(input.Body)

	ld, err := uc.leadUC.GetByPhone(ctx, input.From)
	if err != nil {
		uc.l.Warnf(ctx, "reply from unknown sender %s", input.From)
		return reply.ProcessReplyOutput{Command: cmd}, fmt.Errorf("%w: %v", reply.ErrUnknownSender, err)
	}
	sc.Phone = ld.Phone

	// STOP and START always work, even for opted-out leads.
	switch cmd {
	case reply.CommandStopAll:
		return uc.handleStop(ctx, sc, ld)
	case reply.CommandResubscribe:
		return uc.handleResubscribe(ctx, sc, ld)
	}

	if ld.OptedOut {
		uc.l.Infof(ctx, "dropping reply from opted-out lead %s", ld.ID)
		return reply.ProcessReplyOutput{Command: cmd}, nil
	}

	switch cmd {
	case reply.CommandBook, reply.CommandReschedule:
		return uc.handleBooking(ctx, sc, ld, cmd, rest)
	case reply.CommandSnooze:
		return uc.handleSnooze(ctx, sc, ld, rest)
	case reply.CommandCallback:
		return uc.handleCallback(ctx, sc, ld)
	default:
		// A bare time phrase books; so does the answer to an outstanding
		// clarification prompt.
		return uc.handleBooking(ctx, sc, ld, reply.CommandFreeform, rest)
	}
}

func (uc *implUseCase) handleBooking(ctx context.Context, sc model.Scope, ld model.Lead, cmd reply.Command, text string) (reply.ProcessReplyOutput, error) {
	result := uc.parser.ParseTime(text, uc.now())

	if result.NeedsClarification {
		if err := uc.leadUC.SetAwaitingTime(ctx, sc, ld.ID, true); err != nil {
			return reply.ProcessReplyOutput{Command: cmd}, err
		}
		return uc.send(ctx, cmd, ld.Phone, result.ClarificationPrompt)
	}

	if uc.calendar == nil {
		uc.l.Errorf(ctx, "calendar client not configured, cannot book for lead %s", ld.ID)
		return reply.ProcessReplyOutput{Command: cmd}, reply.ErrCalendarFailure
	}

	booking := gcalendar.BookingRequest{
		CalendarID:   uc.cfg.CalendarID,
		CustomerName: ld.Name,
		Phone:        ld.Phone,
		StartTime:    result.DateTime,
		EndTime:      result.DateTime.Add(uc.cfg.BookingDuration),
		Timezone:     uc.cfg.Timezone,
	}
	if _, err := uc.calendar.BookAppointment(ctx, booking); err != nil {
		uc.l.Errorf(ctx, "calendar.BookAppointment: %v", err)
		return reply.ProcessReplyOutput{Command: cmd}, fmt.Errorf("%w: %v", reply.ErrCalendarFailure, err)
	}

	if _, err := uc.leadUC.Book(ctx, sc, lead.BookLeadInput{LeadID: ld.ID, ScheduledAt: result.DateTime}); err != nil {
		return reply.ProcessReplyOutput{Command: cmd}, err
	}

	return uc.send(ctx, cmd, ld.Phone, smstime.FormatBookingConfirmation(ld.Name, result.DateTime))
}

func (uc *implUseCase) handleSnooze(ctx context.Context, sc model.Scope, ld model.Lead, text string) (reply.ProcessReplyOutput, error) {
	result := uc.parser.ParseSnooze(text, uc.now())

	if !result.Success {
		return uc.send(ctx, reply.CommandSnooze, ld.Phone, result.Error)
	}

	if _, err := uc.leadUC.Snooze(ctx, sc, lead.SnoozeLeadInput{LeadID: ld.ID, RemindAt: result.Until}); err != nil {
		return reply.ProcessReplyOutput{Command: reply.CommandSnooze}, err
	}

	return uc.send(ctx, reply.CommandSnooze, ld.Phone, smstime.FormatSnoozeConfirmation(ld.Name, result.Until))
}

func (uc *implUseCase) handleCallback(ctx context.Context, sc model.Scope, ld model.Lead) (reply.ProcessReplyOutput, error) {
	if _, err := uc.leadUC.RequestCallback(ctx, sc, ld.ID); err != nil {
		return reply.ProcessReplyOutput{Command: reply.CommandCallback}, err
	}
	return uc.send(ctx, reply.CommandCallback, ld.Phone, fmt.Sprintf(msgCallbackAckFmt, uc.cfg.BusinessName))
}

func (uc *implUseCase) handleStop(ctx context.Context, sc model.Scope, ld model.Lead) (reply.ProcessReplyOutput, error) {
	if err := uc.leadUC.SetOptOut(ctx, sc, ld.ID, true); err != nil {
		return reply.ProcessReplyOutput{Command: reply.CommandStopAll}, err
	}
	return uc.send(ctx, reply.CommandStopAll, ld.Phone, msgStopAck)
}

func (uc *implUseCase) handleResubscribe(ctx context.Context, sc model.Scope, ld model.Lead) (reply.ProcessReplyOutput, error) {
	if err := uc.leadUC.SetOptOut(ctx, sc, ld.ID, false); err != nil {
		return reply.ProcessReplyOutput{Command: reply.CommandResubscribe}, err
	}
	return uc.send(ctx, reply.CommandResubscribe, ld.Phone, msgResubscribeAck)
}

func (uc *implUseCase) send(ctx context.Context, cmd reply.Command, to, body string) (reply.ProcessReplyOutput, error) {
	if _, err := uc.sender.SendMessage(ctx, to, body); err != nil {
		uc.l.Errorf(ctx, "sender.SendMessage: %v", err)
		return reply.ProcessReplyOutput{Command: cmd}, fmt.Errorf("%w: %v", reply.ErrSendFailed, err)
	}
	return reply.ProcessReplyOutput{Command: cmd, ReplyBody: body}, nil
}
