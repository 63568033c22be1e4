package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/model"
	"missed-call-recovery/internal/reply"
	"missed-call-recovery/pkg/gcalendar"
	"missed-call-recovery/pkg/sms"
	"missed-call-recovery/pkg/smstime"
)

// Tuesday, March 4 2025, 15:30 UTC.
var refNow = time.Date(2025, 3, 4, 15, 30, 0, 0, time.UTC)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockLeadUC struct {
	leadByPhone model.Lead
	phoneErr    error

	bookedAt      *time.Time
	snoozedUntil  *time.Time
	callbackID    string
	optOutCalls   []bool
	awaitingCalls []bool
}

func (m *mockLeadUC) Create(ctx context.Context, sc model.Scope, input lead.CreateLeadInput) (lead.CreateLeadOutput, error) {
	return lead.CreateLeadOutput{}, nil
}

func (m *mockLeadUC) List(ctx context.Context, sc model.Scope, input lead.ListLeadsInput) (lead.ListLeadsOutput, error) {
	return lead.ListLeadsOutput{}, nil
}

func (m *mockLeadUC) Detail(ctx context.Context, sc model.Scope, id string) (lead.DetailLeadOutput, error) {
	return lead.DetailLeadOutput{}, nil
}

func (m *mockLeadUC) Update(ctx context.Context, sc model.Scope, input lead.UpdateLeadInput) (lead.UpdateLeadOutput, error) {
	return lead.UpdateLeadOutput{}, nil
}

func (m *mockLeadUC) Delete(ctx context.Context, sc model.Scope, id string) error { return nil }

func (m *mockLeadUC) GetByPhone(ctx context.Context, phone string) (model.Lead, error) {
	if m.phoneErr != nil {
		return model.Lead{}, m.phoneErr
	}
	return m.leadByPhone, nil
}

func (m *mockLeadUC) Book(ctx context.Context, sc model.Scope, input lead.BookLeadInput) (model.Lead, error) {
	m.bookedAt = &input.ScheduledAt
	return m.leadByPhone, nil
}

func (m *mockLeadUC) Snooze(ctx context.Context, sc model.Scope, input lead.SnoozeLeadInput) (model.Lead, error) {
	m.snoozedUntil = &input.RemindAt
	return m.leadByPhone, nil
}

func (m *mockLeadUC) RequestCallback(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	m.callbackID = id
	return m.leadByPhone, nil
}

func (m *mockLeadUC) SetOptOut(ctx context.Context, sc model.Scope, id string, optedOut bool) error {
	m.optOutCalls = append(m.optOutCalls, optedOut)
	return nil
}

func (m *mockLeadUC) SetAwaitingTime(ctx context.Context, sc model.Scope, id string, awaiting bool) error {
	m.awaitingCalls = append(m.awaitingCalls, awaiting)
	return nil
}

type mockSender struct {
	sent []string
	to   []string
	err  error
}

func (m *mockSender) SendMessage(ctx context.Context, to, body string) (*sms.SendResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.to = append(m.to, to)
	m.sent = append(m.sent, body)
	return &sms.SendResponse{SID: "SM123", Status: "queued"}, nil
}

type mockBooker struct {
	requests []gcalendar.BookingRequest
	err      error
}

func (m *mockBooker) BookAppointment(ctx context.Context, req gcalendar.BookingRequest) (*gcalendar.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.requests = append(m.requests, req)
	return &gcalendar.Booking{EventID: "evt-1", StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func newTestUseCase(t *testing.T, leadUC *mockLeadUC, sender *mockSender, booker *mockBooker) *implUseCase {
	t.Helper()
	parser, err := smstime.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(mockLogger{}, leadUC, parser, sender, booker, Config{
		CalendarID:      "cal-1",
		Timezone:        "UTC",
		BookingDuration: time.Hour,
		BusinessName:    "Ace Plumbing",
	})
	uc.now = func() time.Time { return refNow }
	return uc
}

func activeLead() model.Lead {
	return model.Lead{
		ID:     "lead-1",
		Name:   "John Smith",
		Phone:  "+15551234567",
		Status: model.LeadStatusContacted,
	}
}

func inbound(body string) reply.ProcessReplyInput {
	return reply.ProcessReplyInput{
		MessageSID: "",
		From:       "+15551234567",
		To:         "+15559990000",
		Body:       body,
	}
}

func TestProcessReplyBooking(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("freeform time phrase books an appointment", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		booker := &mockBooker{}
		uc := newTestUseCase(t, leadUC, sender, booker)

		out, err := uc.ProcessReply(ctx, sc, inbound("TUE 2PM"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.Command != reply.CommandFreeform {
			t.Errorf("command = %q, want freeform", out.Command)
		}

		// Tuesday resolves strictly forward: March 11, 14:00.
		want := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)
		if len(booker.requests) != 1 || !booker.requests[0].StartTime.Equal(want) {
			t.Fatalf("calendar start = %+v, want %v", booker.requests, want)
		}
		if booker.requests[0].EndTime.Sub(booker.requests[0].StartTime) != time.Hour {
			t.Errorf("booking duration = %v, want 1h", booker.requests[0].EndTime.Sub(booker.requests[0].StartTime))
		}
		if leadUC.bookedAt == nil || !leadUC.bookedAt.Equal(want) {
			t.Errorf("lead booked at = %v, want %v", leadUC.bookedAt, want)
		}
		if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "You're booked") {
			t.Errorf("confirmation = %q", sender.sent)
		}
		if !strings.Contains(sender.sent[0], "John Smith") {
			t.Errorf("confirmation missing name: %q", sender.sent[0])
		}
	})

	t.Run("explicit book command with time", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		booker := &mockBooker{}
		uc := newTestUseCase(t, leadUC, sender, booker)

		out, err := uc.ProcessReply(ctx, sc, inbound("1 TOMORROW"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.Command != reply.CommandBook {
			t.Errorf("command = %q, want book", out.Command)
		}
		want := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
		if leadUC.bookedAt == nil || !leadUC.bookedAt.Equal(want) {
			t.Errorf("booked at = %v, want %v", leadUC.bookedAt, want)
		}
	})

	t.Run("TODAY asks for clarification and marks awaiting", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		booker := &mockBooker{}
		uc := newTestUseCase(t, leadUC, sender, booker)

		out, err := uc.ProcessReply(ctx, sc, inbound("TODAY"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.ReplyBody != smstime.PromptWhatTimeToday {
			t.Errorf("reply = %q, want the what-time-today prompt", out.ReplyBody)
		}
		if len(booker.requests) != 0 {
			t.Error("calendar should not be called on clarification")
		}
		if len(leadUC.awaitingCalls) != 1 || !leadUC.awaitingCalls[0] {
			t.Errorf("awaiting calls = %v, want [true]", leadUC.awaitingCalls)
		}
	})

	t.Run("bare 1 prompts for a time", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		booker := &mockBooker{}
		uc := newTestUseCase(t, leadUC, sender, booker)

		out, err := uc.ProcessReply(ctx, sc, inbound("1"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.ReplyBody != smstime.PromptUnrecognized {
			t.Errorf("reply = %q, want the generic prompt", out.ReplyBody)
		}
	})

	t.Run("clarification answer completes the booking", func(t *testing.T) {
		ld := activeLead()
		ld.AwaitingTime = true
		leadUC := &mockLeadUC{leadByPhone: ld}
		sender := &mockSender{}
		booker := &mockBooker{}
		uc := newTestUseCase(t, leadUC, sender, booker)

		_, err := uc.ProcessReply(ctx, sc, inbound("2PM"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		want := time.Date(2025, 3, 4, 14, 0, 0, 0, time.UTC)
		if leadUC.bookedAt == nil || !leadUC.bookedAt.Equal(want) {
			t.Errorf("booked at = %v, want %v", leadUC.bookedAt, want)
		}
	})

	t.Run("calendar failure surfaces and skips persistence", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		booker := &mockBooker{err: errors.New("quota exceeded")}
		uc := newTestUseCase(t, leadUC, sender, booker)

		_, err := uc.ProcessReply(ctx, sc, inbound("TUE 2PM"))
		if !errors.Is(err, reply.ErrCalendarFailure) {
			t.Errorf("error = %v, want ErrCalendarFailure", err)
		}
		if leadUC.bookedAt != nil {
			t.Error("lead should not be booked when the calendar call fails")
		}
		if len(sender.sent) != 0 {
			t.Errorf("no confirmation should be sent, got %v", sender.sent)
		}
	})
}

func TestProcessReplySnooze(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("snooze hours", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		out, err := uc.ProcessReply(ctx, sc, inbound("SNOOZE 3H"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.Command != reply.CommandSnooze {
			t.Errorf("command = %q, want snooze", out.Command)
		}
		want := refNow.Add(3 * time.Hour)
		if leadUC.snoozedUntil == nil || !leadUC.snoozedUntil.Equal(want) {
			t.Errorf("snoozed until = %v, want %v", leadUC.snoozedUntil, want)
		}
		if len(sender.sent) != 1 || !strings.HasPrefix(sender.sent[0], "Snoozed: John Smith") {
			t.Errorf("confirmation = %q", sender.sent)
		}
	})

	t.Run("too-short snooze sends the error text", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		out, err := uc.ProcessReply(ctx, sc, inbound("SNOOZE 5M"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.ReplyBody != smstime.ErrMsgSnoozeTooShort {
			t.Errorf("reply = %q, want too-short error", out.ReplyBody)
		}
		if leadUC.snoozedUntil != nil {
			t.Error("lead should not be snoozed on a rejected duration")
		}
	})
}

func TestProcessReplyCallbackAndOptOut(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("callback request", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		out, err := uc.ProcessReply(ctx, sc, inbound("2"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.Command != reply.CommandCallback {
			t.Errorf("command = %q, want callback", out.Command)
		}
		if leadUC.callbackID != "lead-1" {
			t.Errorf("callback id = %q", leadUC.callbackID)
		}
		if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "Ace Plumbing") {
			t.Errorf("callback ack = %q", sender.sent)
		}
	})

	t.Run("STOP opts out and acknowledges", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		out, err := uc.ProcessReply(ctx, sc, inbound("STOP"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.Command != reply.CommandStopAll {
			t.Errorf("command = %q, want stop_all", out.Command)
		}
		if len(leadUC.optOutCalls) != 1 || !leadUC.optOutCalls[0] {
			t.Errorf("opt-out calls = %v, want [true]", leadUC.optOutCalls)
		}
		if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "START") {
			t.Errorf("stop ack = %q", sender.sent)
		}
	})

	t.Run("STOP works for an already opted-out lead", func(t *testing.T) {
		ld := activeLead()
		ld.OptedOut = true
		leadUC := &mockLeadUC{leadByPhone: ld}
		sender := &mockSender{}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		if _, err := uc.ProcessReply(ctx, sc, inbound("STOP")); err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if len(sender.sent) != 1 {
			t.Errorf("stop ack count = %d, want 1", len(sender.sent))
		}
	})

	t.Run("START resubscribes an opted-out lead", func(t *testing.T) {
		ld := activeLead()
		ld.OptedOut = true
		leadUC := &mockLeadUC{leadByPhone: ld}
		sender := &mockSender{}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		out, err := uc.ProcessReply(ctx, sc, inbound("START"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.Command != reply.CommandResubscribe {
			t.Errorf("command = %q, want resubscribe", out.Command)
		}
		if len(leadUC.optOutCalls) != 1 || leadUC.optOutCalls[0] {
			t.Errorf("opt-out calls = %v, want [false]", leadUC.optOutCalls)
		}
	})

	t.Run("other replies from opted-out leads are dropped", func(t *testing.T) {
		ld := activeLead()
		ld.OptedOut = true
		leadUC := &mockLeadUC{leadByPhone: ld}
		sender := &mockSender{}
		booker := &mockBooker{}
		uc := newTestUseCase(t, leadUC, sender, booker)

		out, err := uc.ProcessReply(ctx, sc, inbound("TUE 2PM"))
		if err != nil {
			t.Fatalf("ProcessReply() error = %v", err)
		}
		if out.ReplyBody != "" {
			t.Errorf("reply = %q, want none", out.ReplyBody)
		}
		if len(sender.sent) != 0 || len(booker.requests) != 0 {
			t.Error("opted-out lead must not trigger sends or bookings")
		}
	})
}

func TestProcessReplyGuards(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("unknown sender", func(t *testing.T) {
		leadUC := &mockLeadUC{phoneErr: lead.ErrLeadNotFound}
		uc := newTestUseCase(t, leadUC, &mockSender{}, &mockBooker{})

		_, err := uc.ProcessReply(ctx, sc, inbound("1 TOMORROW"))
		if !errors.Is(err, reply.ErrUnknownSender) {
			t.Errorf("error = %v, want ErrUnknownSender", err)
		}
	})

	t.Run("duplicate message SID", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		msg := inbound("SNOOZE 3H")
		msg.MessageSID = "SMdup"
		if _, err := uc.ProcessReply(ctx, sc, msg); err != nil {
			t.Fatalf("first ProcessReply() error = %v", err)
		}
		if _, err := uc.ProcessReply(ctx, sc, msg); !errors.Is(err, reply.ErrDuplicateReply) {
			t.Errorf("second ProcessReply() error = %v, want ErrDuplicateReply", err)
		}
		if len(sender.sent) != 1 {
			t.Errorf("sent %d messages, want 1", len(sender.sent))
		}
	})

	t.Run("send failure surfaces", func(t *testing.T) {
		leadUC := &mockLeadUC{leadByPhone: activeLead()}
		sender := &mockSender{err: errors.New("provider down")}
		uc := newTestUseCase(t, leadUC, sender, &mockBooker{})

		_, err := uc.ProcessReply(ctx, sc, inbound("2"))
		if !errors.Is(err, reply.ErrSendFailed) {
			t.Errorf("error = %v, want ErrSendFailed", err)
		}
	})
}
