package config

import (
	"os"
	"strconv"
)

// Config holds all service configuration loaded from the environment.
type Config struct {
	Port          string
	PublicBaseURL string

	// Twilio configuration
	TwilioAccountSID   string
	TwilioAuthToken    string
	DefaultFromNumber  string
	ValidateSignatures bool

	// Escalation targets
	OwnerFallbackNumber string
	OwnerEmail          string

	// OpenAI configuration
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// SMTP configuration for owner notifications
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Google Sheets log sink
	SheetID               string
	GoogleCredentialsFile string

	// Local sqlite store (mirror log, leads, seeded profiles)
	SQLitePath string

	// Redis session store (optional; in-memory fallback when unset)
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Business profile source
	DaycareFile string

	// Call flow variant
	CallOfferFollowUp bool
	CallSpeechMode    string
	AudioBaseURL      string
}

// LoadFromEnv loads service configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		Port:          getEnvOrDefault("PORT", "3000"),
		PublicBaseURL: getEnvOrDefault("PUBLIC_BASE_URL", ""),

		TwilioAccountSID:   getEnvOrDefault("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnvOrDefault("TWILIO_AUTH_TOKEN", ""),
		DefaultFromNumber:  getEnvOrDefault("DEFAULT_FROM_NUMBER", ""),
		ValidateSignatures: getEnvAsBoolOrDefault("TWILIO_VALIDATE_SIGNATURES", false),

		OwnerFallbackNumber: getEnvOrDefault("OWNER_FALLBACK_NUMBER", ""),
		OwnerEmail:          getEnvOrDefault("OWNER_EMAIL", ""),

		OpenAIAPIKey:  getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com"),

		SMTPHost: getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort: getEnvAsIntOrDefault("SMTP_PORT", 465),
		SMTPUser: getEnvOrDefault("SMTP_USER", ""),
		SMTPPass: getEnvOrDefault("SMTP_PASS", ""),

		SheetID:               getEnvOrDefault("SHEET_ID", ""),
		GoogleCredentialsFile: getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", "/etc/secrets/daycare-bot-service.json"),

		SQLitePath: getEnvOrDefault("SQLITE_PATH", "./daycare.sqlite"),

		RedisHost:     getEnvOrDefault("REDIS_HOST", ""),
		RedisPort:     getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),

		DaycareFile: getEnvOrDefault("DAYCARE_FILE", "./daycares.json"),

		CallOfferFollowUp: getEnvAsBoolOrDefault("CALL_OFFER_FOLLOW_UP", true),
		CallSpeechMode:    getEnvOrDefault("CALL_SPEECH_MODE", "say"),
		AudioBaseURL:      getEnvOrDefault("AUDIO_BASE_URL", ""),
	}
}

// getEnvOrDefault gets environment variable or returns default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault gets environment variable as int or returns default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault gets environment variable as bool or returns default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
