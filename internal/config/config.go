package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port           string
	Environment    string
	AllowedOrigins []string
	RequestTimeout time.Duration

	// Database
	DatabaseURL string

	// JWT
	JWTSecret          string
	JWTExpirationHours int

	// Uploads
	UploadBackend    string
	UploadDir        string
	S3Bucket         string
	S3Prefix         string
	MaxUploadFiles   int
	MaxUploadBytes   int64
	MaxDownloadBytes int64
	DownloadTimeout  time.Duration

	// Lets upload-by-link fetch from loopback and private networks.
	AllowPrivateDownloads bool

	// Logging
	LogLevel string
}

const (
	UploadBackendDisk = "disk"
	UploadBackendS3   = "s3"
)

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "4000"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:5174"}),
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		UploadBackend:      strings.ToLower(getEnv("UPLOAD_BACKEND", UploadBackendDisk)),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", ""),
		MaxUploadFiles:     getEnvInt("MAX_UPLOAD_FILES", 100),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_MB", 32)) << 20,
		MaxDownloadBytes:   int64(getEnvInt("MAX_DOWNLOAD_MB", 10)) << 20,
		DownloadTimeout:    time.Duration(getEnvInt("DOWNLOAD_TIMEOUT_SECONDS", 15)) * time.Second,
		LogLevel:           getEnv("LOG_LEVEL", "info"),

		AllowPrivateDownloads: getEnvBool("ALLOW_PRIVATE_DOWNLOADS", false),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	switch cfg.UploadBackend {
	case UploadBackendDisk:
	case UploadBackendS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when UPLOAD_BACKEND=s3")
		}
	default:
		return nil, fmt.Errorf("unknown UPLOAD_BACKEND %q", cfg.UploadBackend)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TokenTTL is the lifetime of issued session tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
