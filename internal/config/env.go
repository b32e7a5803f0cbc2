package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Settings struct {
	DatabaseDSN string
	AutoMigrate bool
	JWTSecret   string
	CryptoKey   string
	LogLevel    string
	Port        string
	CORSOrigins []string

	GeminiModel       string
	AIFeedbackEnabled bool

	CertificateBaseURL      string
	CertificateServiceURL   string
	CertificateClientID     string
	CertificateClientSecret string
	CertificateTokenURL     string
}

// Load reads a local .env file when one exists and then the process environment.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}

	return &Settings{
		DatabaseDSN: GetEnv("DATABASE_DSN", ""),
		AutoMigrate: GetEnvBool("AUTO_MIGRATE", false),
		JWTSecret:   GetEnv("JWT_SECRET", ""),
		CryptoKey:   GetEnv("CRYPTO_KEY", ""),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		Port:        GetEnv("PORT", "8080"),
		CORSOrigins: splitList(GetEnv("CORS_ALLOWED_ORIGINS", "*")),

		GeminiModel:       GetEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AIFeedbackEnabled: GetEnvBool("AI_FEEDBACK_ENABLED", false),

		CertificateBaseURL:      GetEnv("CERTIFICATE_BASE_URL", "http://localhost:8080/certificates/verify"),
		CertificateServiceURL:   GetEnv("CERTIFICATE_SERVICE_URL", ""),
		CertificateClientID:     GetEnv("CERTIFICATE_CLIENT_ID", ""),
		CertificateClientSecret: GetEnv("CERTIFICATE_CLIENT_SECRET", ""),
		CertificateTokenURL:     GetEnv("CERTIFICATE_TOKEN_URL", ""),
	}
}

func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
