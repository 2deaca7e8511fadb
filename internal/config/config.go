package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBDSN      string

	JWTSecret string
	TokenTTL  time.Duration

	MailHost    string
	MailPort    int
	MailSecure  bool
	MailUser    string
	MailPass    string
	MailFrom    string
	MailTimeout time.Duration

	CompanyName    string
	MeetLink       string
	AllowedOrigins []string

	// bootstrap admin, optional
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// MailEnabled reports whether an SMTP transport is configured.
func (c *Config) MailEnabled() bool {
	return c.MailHost != ""
}

func Load() *Config {
	_ = godotenv.Load()

	cfg, err := parse(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func parse(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		ServerPort:    get("SERVER_PORT", get("PORT", "3001")),
		DBDSN:         get("DB_DSN", ""),
		JWTSecret:     getenv("JWT_SECRET"),
		MailHost:      get("MAIL_HOST", ""),
		MailUser:      get("MAIL_USER", ""),
		MailPass:      getenv("MAIL_PASS"),
		CompanyName:   get("COMPANY_NAME", "DataBridge Solutions"),
		MeetLink:      get("GOOGLE_MEET_LINK", "https://meet.google.com"),
		AdminUsername: get("ADMIN_USERNAME", ""),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		AdminEmail:    get("ADMIN_EMAIL", ""),
	}

	if cfg.DBDSN == "" {
		cfg.DBDSN = fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
			get("DB_HOST", "localhost"),
			get("DB_PORT", "5432"),
			get("DB_NAME", "databridge"),
			get("DB_USER", "postgres"),
			getenv("DB_PASSWORD"),
			get("DB_SSLMODE", "disable"),
		)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(get("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if cfg.MailTimeout, err = time.ParseDuration(get("MAIL_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("MAIL_TIMEOUT: %w", err)
	}
	if cfg.MailPort, err = strconv.Atoi(get("MAIL_PORT", "587")); err != nil {
		return nil, fmt.Errorf("MAIL_PORT: %w", err)
	}
	cfg.MailSecure = get("MAIL_SECURE", "false") == "true"
	cfg.MailFrom = get("MAIL_FROM", cfg.MailUser)

	for _, o := range strings.Split(get("CORS_ORIGINS", "http://localhost:5173,http://localhost:3001"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}
