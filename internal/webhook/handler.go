package webhook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/model"
	pkgResponse "missed-call-recovery/pkg/response"
)

const recoverySMSFmt = "Hi%s, this is %s. Sorry we missed your call! Reply 1 with a time to book an appointment (like TUE 2PM or TOMORROW), 2 for a call back, or STOP to opt out."

// HandleCallEvent processes voice-AI call webhook events.
func (h *Handler) HandleCallEvent(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	signature := c.GetHeader("X-Webhook-Signature")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit("voice_ai"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	eventType := c.GetHeader("X-Webhook-Event")
	switch eventType {
	case "call_missed", "call_ended":
	default:
		h.l.Infof(ctx, "Unsupported call event type: %s", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	event, err := h.parser.ParseCallEvent(body, eventType)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse call event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Process in background
	go h.processCallEventAsync(*event)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// processCallEventAsync creates the lead and fires the recovery SMS.
func (h *Handler) processCallEventAsync(event model.CallEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	h.l.Infof(ctx, "Processing call event async: %s call=%s from=%s", event.EventType, event.CallID, event.FromNumber)

	if event.Answered() {
		h.l.Infof(ctx, "Call %s was answered, no recovery needed", event.CallID)
		return
	}

	sc := model.Scope{UserID: "system_webhook"}
	out, err := h.leadUC.Create(ctx, sc, lead.CreateLeadInput{
		Name:   event.CallerName,
		Phone:  event.FromNumber,
		Source: string(event.Source),
	})
	if err != nil {
		if errors.Is(err, lead.ErrDuplicatePhone) {
			h.l.Infof(ctx, "Lead for %s already exists, skipping recovery SMS", event.FromNumber)
			return
		}
		h.l.Errorf(ctx, "Lead creation failed: %v", err)
		return
	}

	greeting := ""
	if event.CallerName != "" {
		greeting = " " + event.CallerName
	}
	body := fmt.Sprintf(recoverySMSFmt, greeting, h.businessName)
	if _, err := h.sender.SendMessage(ctx, event.FromNumber, body); err != nil {
		h.l.Errorf(ctx, "Recovery SMS failed for lead %s: %v", out.Lead.ID, err)
		return
	}

	h.l.Infof(ctx, "Recovery SMS sent to lead %s", out.Lead.ID)
}
