package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"missed-call-recovery/internal/lead"
	leadHTTP "missed-call-recovery/internal/lead/delivery/http"
	leadRepo "missed-call-recovery/internal/lead/repository/postgre"
	leadUsecase "missed-call-recovery/internal/lead/usecase"
	"missed-call-recovery/internal/middleware"
	smsDelivery "missed-call-recovery/internal/reply/delivery/sms"
	replyUsecase "missed-call-recovery/internal/reply/usecase"
	"missed-call-recovery/internal/webhook"
)

// setupLeadDomain initializes the lead domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupLeadDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (lead.UseCase, error) {
	repo := leadRepo.New(srv.postgresDB, srv.l)
	uc := leadUsecase.New(srv.l, repo)
	h := leadHTTP.New(srv.l, uc)
	leadHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Lead domain registered at /api/v1/leads")
	return uc, nil
}

// setupReplyDomain wires the inbound SMS webhook to the reply pipeline.
func (srv *HTTPServer) setupReplyDomain(ctx context.Context, leadUC lead.UseCase) error {
	uc := replyUsecase.New(srv.l, leadUC, srv.timeParser, srv.smsClient, srv.calendar, replyUsecase.Config{
		CalendarID:      srv.scheduling.CalendarID,
		Timezone:        srv.scheduling.Timezone,
		BookingDuration: time.Duration(srv.scheduling.BookingDuration) * time.Minute,
		BusinessName:    srv.scheduling.BusinessName,
	})

	h := smsDelivery.New(srv.l, uc, srv.twilioAuthToken)
	srv.gin.POST("/webhook/sms", h.HandleInbound)

	srv.l.Infof(ctx, "Inbound SMS webhook registered at POST /webhook/sms")
	return nil
}

// setupCallEventWebhook registers the voice-AI call-event webhook.
func (srv *HTTPServer) setupCallEventWebhook(ctx context.Context, leadUC lead.UseCase) {
	if !srv.webhookEnabled {
		srv.l.Infof(ctx, "Call-event webhook disabled, skipping route")
		return
	}

	h := webhook.NewHandler(leadUC, srv.smsClient, srv.webhookSecurity, srv.scheduling.BusinessName, srv.l)
	srv.gin.POST("/webhook/call-events", h.HandleCallEvent)

	srv.l.Infof(ctx, "Call-event webhook registered at POST /webhook/call-events")
}
