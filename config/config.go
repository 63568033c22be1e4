package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Missed-call recovery specifics
	Postgres       PostgresConfig
	Twilio         TwilioConfig
	GoogleCalendar GoogleCalendarConfig
	Scheduling     SchedulingConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	InternalKey string // shared key guarding the dashboard API
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string // E.164 number recovery texts are sent from
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// SchedulingConfig controls how free-text replies resolve to bookings.
type SchedulingConfig struct {
	Timezone            string // IANA name the business operates in
	BookingDurationMins int    // calendar slot length
	BusinessName        string // used in outbound recovery texts
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.InternalKey = viper.GetString("http_server.internal_key")
	if key := viper.GetString("internal_api_key"); key != "" {
		cfg.HTTPServer.InternalKey = key
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Twilio
	cfg.Twilio.AccountSID = viper.GetString("twilio.account_sid")
	cfg.Twilio.AuthToken = viper.GetString("twilio.auth_token")
	cfg.Twilio.FromNumber = viper.GetString("twilio.from_number")
	if sid := viper.GetString("twilio_account_sid"); sid != "" {
		cfg.Twilio.AccountSID = sid
	}
	if token := viper.GetString("twilio_auth_token"); token != "" {
		cfg.Twilio.AuthToken = token
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	// Scheduling
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.BookingDurationMins = viper.GetInt("scheduling.booking_duration_mins")
	cfg.Scheduling.BusinessName = viper.GetString("scheduling.business_name")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if secret := viper.GetString("webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("scheduling.timezone", "America/Chicago")
	viper.SetDefault("scheduling.booking_duration_mins", 60)
	viper.SetDefault("scheduling.business_name", "our team")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)
}
