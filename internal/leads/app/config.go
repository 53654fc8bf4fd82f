package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for tokens

	SigningKeySeedFile string // Optional: path to Ed25519 seed file (ephemeral key when unset)
	SigningKeyID       string // Optional: kid header on minted tokens (default: leads-1)

	DatabaseFile    string // Optional: path to SQLite database file (default: ./leads.db)
	ShareLinkBase   string // Optional: public site prefix for shortlist share links
	AdminSetupToken string // Optional: if set, required to provision admin accounts

	FCMCredentialsFile string // Optional: Firebase service account file; pushes are log-only when unset

	DedupWindow time.Duration // Optional: lead duplicate suppression window (default: 5m)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:             os.Getenv("LEADS_ISSUER"),
		SigningKeySeedFile: os.Getenv("LEADS_SIGNING_KEY_FILE"), // Optional
		SigningKeyID:       getEnvOrDefault("LEADS_SIGNING_KEY_ID", "leads-1"),
		DatabaseFile:       getEnvOrDefault("LEADS_DATABASE_FILE", "leads.db"),
		ShareLinkBase: getEnvOrDefault(
			"LEADS_SHARE_LINK_BASE",
			"http://localhost:3000",
		),
		AdminSetupToken: os.Getenv(
			"LEADS_ADMIN_SETUP_TOKEN",
		), // Optional: if set, required to provision admins
		FCMCredentialsFile:  os.Getenv("LEADS_FCM_CREDENTIALS_FILE"), // Optional
		DedupWindow:         getEnvDurationOrDefault("LEADS_DEDUP_WINDOW", 5*time.Minute),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "consultbase-leads"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
