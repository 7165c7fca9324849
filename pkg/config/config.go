package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	OTPTTLMinutes   int
	MailAPIKey      string
	MailBaseURL     string
	MailFromAddress string
	GCSBucket       string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DATABASE", "mingleme"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		OTPTTLMinutes:   getEnvInt("OTP_TTL_MINUTES", 10),
		MailAPIKey:      getEnv("MAIL_API_KEY", ""),
		MailBaseURL:     getEnv("MAIL_BASE_URL", "https://api.sendgrid.com/v3/mail/send"),
		MailFromAddress: getEnv("MAIL_FROM_ADDRESS", "no-reply@mingleme.app"),
		GCSBucket:       getEnv("GCS_BUCKET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
