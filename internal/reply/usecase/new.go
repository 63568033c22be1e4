package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"missed-call-recovery/internal/lead"
	"missed-call-recovery/internal/reply"
	"missed-call-recovery/pkg/log"
	"missed-call-recovery/pkg/smstime"
)

const dedupCacheSize = 1024

// Config carries the scheduling knobs the reply flow needs.
type Config struct {
	CalendarID      string
	Timezone        string
	BookingDuration time.Duration
	BusinessName    string
}

type implUseCase struct {
	l        log.Logger
	leadUC   lead.UseCase
	parser   *smstime.Parser
	sender   reply.SMSSender
	calendar reply.CalendarBooker
	cfg      Config

	// seen dedups inbound messages by provider message SID.
	seen *expirable.LRU[string, struct{}]
	now  func() time.Time
}

// New creates a new reply UseCase instance.
func New(l log.Logger, leadUC lead.UseCase, parser *smstime.Parser, sender reply.SMSSender, calendar reply.CalendarBooker, cfg Config) *implUseCase {
	if cfg.BookingDuration <= 0 {
		cfg.BookingDuration = time.Hour
	}
	return &implUseCase{
		l:        l,
		leadUC:   leadUC,
		parser:   parser,
		sender:   sender,
		calendar: calendar,
		cfg:      cfg,
		seen:     expirable.NewLRU[string, struct{}](dedupCacheSize, nil, time.Hour),
		now:      time.Now,
	}
}
