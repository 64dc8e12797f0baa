/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures the server by reading operating system environment variables: the running
environment, port, CORS allowed origins, room token issuance, the live stream upstream,
and the optional database and object storage backends.
*/
package configs

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"biblenow/internal/pkg/auth/jwt"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables once at startup and
// never mutated afterwards.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins    []string
	SupabaseJWTSecret string

	// Room Token Settings
	JitsiAppSecret string
	JitsiAppID     string
	JitsiSubject   string
	TokenRate      float64
	TokenBurst     int

	// Live Stream Settings
	LiveUpstreamURL *url.URL

	// Database Settings
	DatabaseDSN   string
	RunMigrations bool

	// S3 Storage Settings
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// TokenIssuer returns the audience/issuer and subject put on every room token.
func (c *AppConfig) TokenIssuer() jwt.Issuer {
	return jwt.Issuer{AppID: c.JitsiAppID, Subject: c.JitsiSubject}
}

// DatabaseEnabled reports whether a database is configured. Social routes depend on it.
func (c *AppConfig) DatabaseEnabled() bool {
	return c.DatabaseDSN != ""
}

// StorageEnabled reports whether every S3 setting needed for avatar uploads is present.
func (c *AppConfig) StorageEnabled() bool {
	return c.S3BucketName != "" && c.S3Endpoint != "" &&
		c.S3AccessKeyID != "" && c.S3SecretAccessKey != "" && c.S3PublicBaseURL != ""
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary type conversions
// and validation. A missing room token secret is not an error here: the token endpoint reports
// it per request as a configuration fault, and the rest of the server keeps working.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = getEnv("ENVIRONMENT", "development")

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT environment variable: port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	cfg.AllowedOrigins = []string{}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	cfg.SupabaseJWTSecret = os.Getenv("SUPABASE_JWT_SECRET")

	// --- Room Token Settings ---
	cfg.JitsiAppSecret = os.Getenv("JITSI_APP_SECRET")
	cfg.JitsiAppID = getEnv("JITSI_APP_ID", jwt.DefaultAppID)
	cfg.JitsiSubject = getEnv("JITSI_SUBJECT", jwt.DefaultSubject)

	cfg.TokenRate, err = strconv.ParseFloat(getEnv("TOKEN_RATE_PER_SEC", "1"), 64)
	if err != nil || cfg.TokenRate <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_RATE_PER_SEC environment variable: must be a positive number")
	}

	cfg.TokenBurst, err = strconv.Atoi(getEnv("TOKEN_BURST", "10"))
	if err != nil || cfg.TokenBurst < 1 {
		return nil, fmt.Errorf("invalid TOKEN_BURST environment variable: must be a positive integer")
	}

	// --- Live Stream Settings ---
	upstream, err := url.Parse(getEnv("LIVE_UPSTREAM_URL", "https://live.biblenow.io"))
	if err != nil {
		return nil, fmt.Errorf("invalid LIVE_UPSTREAM_URL environment variable: %w", err)
	}
	if upstream.Scheme != "http" && upstream.Scheme != "https" || upstream.Host == "" {
		return nil, fmt.Errorf("invalid LIVE_UPSTREAM_URL environment variable: %q is not an absolute http(s) URL", upstream)
	}
	cfg.LiveUpstreamURL = upstream

	// --- Database Settings ---
	cfg.DatabaseDSN = os.Getenv("DATABASE_URL")

	cfg.RunMigrations, err = strconv.ParseBool(getEnv("RUN_MIGRATIONS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid RUN_MIGRATIONS environment variable: %w", err)
	}

	if cfg.DatabaseEnabled() && cfg.SupabaseJWTSecret == "" {
		if cfg.IsDevelopment() {
			cfg.SupabaseJWTSecret = "your_default_insecure_secret_key_change_me"
		} else {
			return nil, fmt.Errorf("SUPABASE_JWT_SECRET environment variable is required in %s environment when DATABASE_URL is set", cfg.Environment)
		}
	}

	// --- S3 Storage Settings ---
	cfg.S3BucketName = os.Getenv("S3_BUCKET_NAME")
	cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.S3PublicBaseURL = strings.TrimSuffix(os.Getenv("S3_PUBLIC_BASE_URL"), "/")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
