package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"missed-call-recovery/internal/reply"
	"missed-call-recovery/internal/webhook"
	"missed-call-recovery/pkg/log"
	"missed-call-recovery/pkg/sms"
	"missed-call-recovery/pkg/smstime"
)

// SchedulingConfig controls booking behavior for the reply flow.
type SchedulingConfig struct {
	CalendarID      string
	Timezone        string
	BookingDuration int // minutes
	BusinessName    string
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Data + clients
	postgresDB *sql.DB
	smsClient  *sms.Client
	calendar   reply.CalendarBooker
	timeParser *smstime.Parser

	// Config
	internalKey     string
	twilioAuthToken string
	scheduling      SchedulingConfig
	webhookEnabled  bool
	webhookSecurity webhook.SecurityConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	SMSClient  *sms.Client
	Calendar   reply.CalendarBooker
	TimeParser *smstime.Parser

	InternalKey     string
	TwilioAuthToken string
	Scheduling      SchedulingConfig
	WebhookEnabled  bool
	WebhookSecurity webhook.SecurityConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		postgresDB:      cfg.PostgresDB,
		smsClient:       cfg.SMSClient,
		calendar:        cfg.Calendar,
		timeParser:      cfg.TimeParser,
		internalKey:     cfg.InternalKey,
		twilioAuthToken: cfg.TwilioAuthToken,
		scheduling:      cfg.Scheduling,
		webhookEnabled:  cfg.WebhookEnabled,
		webhookSecurity: cfg.WebhookSecurity,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.smsClient == nil {
		return errors.New("sms client is required")
	}
	if srv.timeParser == nil {
		return errors.New("time parser is required")
	}
	return nil
}
