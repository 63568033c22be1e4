package sms

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"missed-call-recovery/internal/model"
	"missed-call-recovery/internal/reply"
	pkgResponse "missed-call-recovery/pkg/response"
)

type inboundForm struct {
	MessageSid string `form:"MessageSid"`
	From       string `form:"From" binding:"required"`
	To         string `form:"To"`
	Body       string `form:"Body"`
}

// HandleInbound is the Gin handler for inbound SMS webhooks. It responds
// with HTTP 200 immediately and processes the message in a background
// goroutine; the provider retries on slow responses, and the reply
// pipeline (parse + calendar + outbound SMS) can take seconds.
func (h *handler) HandleInbound(c *gin.Context) {
	ctx := c.Request.Context()

	var form inboundForm
	if err := c.ShouldBind(&form); err != nil {
		h.l.Errorf(ctx, "sms handler: failed to bind inbound form: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if h.authToken != "" {
		fullURL := requestURL(c)
		sig := c.GetHeader("X-Twilio-Signature")
		if !validSignature(h.authToken, fullURL, c.Request.PostForm, sig) {
			h.l.Warnf(ctx, "sms handler: invalid signature from %s", c.ClientIP())
			pkgResponse.Forbidden(c)
			return
		}
	}

	input := reply.ProcessReplyInput{
		MessageSID: form.MessageSid,
		From:       form.From,
		To:         form.To,
		Body:       form.Body,
	}

	// Process in a goroutine, return 200 immediately to the provider.
	go func() {
		// Detach from the request context, which is cancelled after the
		// response is written.
		bgCtx := context.Background()
		sc := model.Scope{Phone: input.From}
		if _, err := h.uc.ProcessReply(bgCtx, sc, input); err != nil {
			if errors.Is(err, reply.ErrDuplicateReply) {
				h.l.Infof(bgCtx, "sms handler: duplicate message %s ignored", input.MessageSID)
				return
			}
			h.l.Errorf(bgCtx, "sms handler: background ProcessReply failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// requestURL reconstructs the public URL the provider signed.
func requestURL(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil && c.GetHeader("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host + c.Request.RequestURI
}
