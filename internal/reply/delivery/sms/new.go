package sms

import (
	"github.com/gin-gonic/gin"

	"missed-call-recovery/internal/reply"
	pkgLog "missed-call-recovery/pkg/log"
)

// Handler is the interface for the inbound SMS delivery handler.
type Handler interface {
	HandleInbound(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc reply.UseCase

	// authToken signs inbound webhooks; empty disables validation
	// (local development).
	authToken string
}

// New creates a new inbound SMS delivery handler.
func New(l pkgLog.Logger, uc reply.UseCase, authToken string) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		authToken: authToken,
	}
}
