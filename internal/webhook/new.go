package webhook

import (
	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/reply"
	pkgLog "missed-call-recovery/pkg/log"
)

type Handler struct {
	leadUC       lead.UseCase
	sender       reply.SMSSender
	security     *SecurityValidator
	parser       *CallEventParser
	businessName string
	l            pkgLog.Logger
}

func NewHandler(
	leadUC lead.UseCase,
	sender reply.SMSSender,
	securityConfig SecurityConfig,
	businessName string,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		leadUC:       leadUC,
		sender:       sender,
		security:     NewSecurityValidator(securityConfig),
		parser:       NewCallEventParser(),
		businessName: businessName,
		l:            l,
	}
}
