package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"missed-call-recovery/config"
	_ "missed-call-recovery/docs" // Swagger docs
	"missed-call-recovery/internal/httpserver"
	leadRepo "missed-call-recovery/internal/lead/repository/postgre"
	"missed-call-recovery/internal/reply"
	"missed-call-recovery/internal/webhook"
	"missed-call-recovery/pkg/gcalendar"
	"missed-call-recovery/pkg/log"
	"missed-call-recovery/pkg/sms"
	"missed-call-recovery/pkg/smstime"
)

// @title       Missed-Call Recovery API
// @description SMS-driven missed-call recovery: inbound reply parsing, appointment booking, lead management.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Missed-Call Recovery...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := leadRepo.Connect(cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	// 4. Outbound SMS client
	smsClient := sms.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)

	// 5. Time parser
	timeParser, err := smstime.NewParser(cfg.Scheduling.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduling.Timezone, err)
		timeParser, _ = smstime.NewParser("UTC")
	}

	// 6. Google Calendar client (optional; bookings fail without it)
	var calendarClient reply.CalendarBooker
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gc, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = gc
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB: db,
		SMSClient:  smsClient,
		Calendar:   calendarClient,
		TimeParser: timeParser,

		InternalKey:     cfg.HTTPServer.InternalKey,
		TwilioAuthToken: cfg.Twilio.AuthToken,
		Scheduling: httpserver.SchedulingConfig{
			CalendarID:      cfg.GoogleCalendar.CalendarID,
			Timezone:        cfg.Scheduling.Timezone,
			BookingDuration: cfg.Scheduling.BookingDurationMins,
			BusinessName:    cfg.Scheduling.BusinessName,
		},
		WebhookEnabled: cfg.Webhook.Enabled,
		WebhookSecurity: webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
