package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// DatabaseURL may be empty. Together with UseDatabase it selects the
	// degraded cookie-trust mode: when no store is configured, the session
	// validator trusts cookie presence alone. That mode is for local
	// development only and must never be enabled in production.
	DatabaseURL string
	UseDatabase bool

	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration

	AllowOrigins    []string
	LogstashTCPAddr string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	ContactEmail string

	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketUploads string
	MinIOPublicURL     string

	ProjectImageMaxBytes     int64
	ProjectImageMaxDimension int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	environment := getenv("APP_ENV", "development")

	sessionTTL := 24 * time.Hour
	if v, err := time.ParseDuration(getenv("SESSION_TTL", "24h")); err == nil && v > 0 {
		sessionTTL = v
	}

	imageMax := int64(5 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("PROJECT_IMAGE_MAX_BYTES", "5242880"), 10, 64); err == nil && v > 0 {
		imageMax = v
	}

	imageMaxDim := 3840
	if v, err := strconv.Atoi(getenv("PROJECT_IMAGE_MAX_DIMENSION", "3840")); err == nil && v > 0 {
		imageMaxDim = v
	}

	databaseURL := getenv("DATABASE_URL", "")
	useDatabase := environment == "production" || getenv("USE_DATABASE", "") == "true"
	if databaseURL == "" {
		useDatabase = false
	}

	return Config{
		Port:        getenv("PORT", "8080"),
		Environment: environment,

		DatabaseURL: databaseURL,
		UseDatabase: useDatabase,

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		SessionTTL:    sessionTTL,

		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),

		SMTPHost:     getenv("SMTP_HOST", ""),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUsername: getenv("SMTP_USER", ""),
		SMTPPassword: getenv("SMTP_PASS", ""),
		SMTPFrom:     getenv("SMTP_FROM", getenv("SMTP_USER", "")),
		ContactEmail: getenv("CONTACT_EMAIL", getenv("SMTP_USER", "")),

		MinIOEndpoint:      getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketUploads: getenv("MINIO_BUCKET_UPLOADS", "portfolio-uploads"),
		MinIOPublicURL:     getenv("MINIO_PUBLIC_URL", ""),

		ProjectImageMaxBytes:     imageMax,
		ProjectImageMaxDimension: imageMaxDim,
	}
}

func (c Config) Production() bool {
	return c.Environment == "production"
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
