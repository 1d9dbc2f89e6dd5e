package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"folio/internal/mailer"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL    string
	Addr           string
	AllowedOrigins []string

	// LikesModel selects the ledger implementation: "rows" (per-device
	// unique rows, the default) or "counter" (legacy anonymous tally).
	LikesModel string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration

	SMTP          mailer.Config
	MailOwner     string
	MailAutoReply bool

	LogLevel  string
	LogFormat string
}

// SMTPEnabled reports whether outbound email is configured.
func (c Config) SMTPEnabled() bool {
	return c.SMTP.Host != "" && c.MailOwner != ""
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL env var is required")
	}

	addr := fmt.Sprintf(":%s", envOrDefault("PORT", "8080"))

	origins := parseAllowedOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))

	likesModel := envOrDefault("LIKES_MODEL", "rows")
	if likesModel != "rows" && likesModel != "counter" {
		return Config{}, fmt.Errorf("LIKES_MODEL must be rows or counter, got %q", likesModel)
	}

	maxOpen, err := envIntOrDefault("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := envIntOrDefault("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, err
	}
	idleSeconds, err := envIntOrDefault("DB_CONN_MAX_IDLE_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	smtpPort, err := envIntOrDefault("SMTP_PORT", 587)
	if err != nil {
		return Config{}, err
	}

	return Config{
		DatabaseURL:     dsn,
		Addr:            addr,
		AllowedOrigins:  origins,
		LikesModel:      likesModel,
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxIdleTime: time.Duration(idleSeconds) * time.Second,
		SMTP: mailer.Config{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     envOrDefault("MAIL_FROM", "no-reply@localhost"),
		},
		MailOwner:     os.Getenv("MAIL_OWNER"),
		MailAutoReply: envOrDefault("MAIL_AUTO_REPLY", "true") == "true",
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return value, nil
}

func parseAllowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	var origins []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
