package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds runtime settings sourced from the environment. main.go loads
// .env.local first in development, so plain os.Getenv is enough here.
type Config struct {
	DatabaseURL   string
	Port          string
	SessionSecret string

	// Production controls whether the session cookie requires a secure
	// transport.
	Production bool

	// S3 settings for gallery uploads. All four must be set for presigned
	// uploads to be available.
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required")

// LoadFromEnv reads configuration from environment variables.
//
// Environment variables:
//   - DATABASE_URL: Postgres DSN (required, checked by db.Connect)
//   - PORT: HTTP listen port (default 5050)
//   - SESSION_SECRET: HMAC key for signing session cookies (required)
//   - APP_ENV: "production" enables Secure cookies
//   - S3_REGION, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY, S3_ENDPOINT:
//     gallery upload target (optional; presign endpoint returns 503 if unset)
func LoadFromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))

	return Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          port,
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Production:    env == "production",
		S3Region:      os.Getenv("S3_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
	}
}

// Validate checks settings that have no safe default.
func (c Config) Validate() error {
	if c.SessionSecret == "" {
		return ErrMissingSessionSecret
	}
	return nil
}

// S3Configured reports whether gallery uploads can be presigned.
func (c Config) S3Configured() bool {
	return c.S3Region != "" && c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
