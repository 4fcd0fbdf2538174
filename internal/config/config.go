package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all environment-driven settings, read once at startup.
type Config struct {
	Port           string
	UseMemoryStore bool

	// Database
	DBUser                 string
	DBPass                 string
	DBName                 string
	InstanceConnectionName string

	// Sessions
	SessionSecret string

	// Twilio
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Uploaded document storage
	UploadDir string
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		UseMemoryStore:         os.Getenv("USE_MEMORY_STORE") == "true",
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPass:                 os.Getenv("DB_PASS"),
		DBName:                 getEnv("DB_NAME", "movex"),
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		SessionSecret:          os.Getenv("SESSION_SECRET"),
		TwilioAccountSID:       os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:        os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:             os.Getenv("TWILIO_PHONE_NUMBER"),
		SMTPHost:               os.Getenv("SMTP_HOST"),
		SMTPUser:               os.Getenv("SMTP_USER"),
		SMTPPassword:           os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:               getEnv("SMTP_FROM", "noreply@movex.app"),
		UploadDir:              getEnv("UPLOAD_DIR", "uploads"),
	}

	if cfg.SessionSecret == "" {
		return cfg, fmt.Errorf("SESSION_SECRET is required")
	}

	port := getEnv("SMTP_PORT", "587")
	smtpPort, err := strconv.Atoi(port)
	if err != nil {
		return cfg, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
	}
	cfg.SMTPPort = smtpPort

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
