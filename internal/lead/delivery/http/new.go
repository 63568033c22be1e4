package http

import (
	"missed-call-recovery/internal/lead"
	"missed-call-recovery/pkg/log"
)

type handler struct {
	l  log.Logger
	uc lead.UseCase
}

// New creates a new HTTP handler for the lead domain.
func New(l log.Logger, uc lead.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
