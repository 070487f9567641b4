// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	JWT      JWTConfig
	Platform PlatformConfig
	Upload   UploadConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port         int
	SecureCookie bool
	// ReadTimeout bounds reading a request, video uploads included
	ReadTimeout time.Duration
	// WriteTimeout covers reading the body plus the upload and save calls to the platform
	WriteTimeout time.Duration
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds the secret the platform signs access tokens with
type JWTConfig struct {
	Secret string
}

// PlatformConfig holds the EduStore platform API settings
type PlatformConfig struct {
	BaseURL string
	Timeout time.Duration
}

// UploadConfig holds lesson video upload limits
type UploadConfig struct {
	MaxVideoBytes   int64
	MaxRequestBytes int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = serverPort

	secureCookie, err := boolEnv("SECURE_COOKIE", false)
	if err != nil {
		return nil, err
	}
	cfg.Server.SecureCookie = secureCookie

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	// Platform API configuration
	apiBaseURL := strings.TrimRight(os.Getenv("API_BASE_URL"), "/")
	if apiBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	cfg.Platform.BaseURL = apiBaseURL

	apiTimeoutStr := os.Getenv("API_TIMEOUT")
	if apiTimeoutStr == "" {
		apiTimeoutStr = "30s"
	}
	apiTimeout, err := time.ParseDuration(apiTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	cfg.Platform.Timeout = apiTimeout

	readTimeoutStr := os.Getenv("SERVER_READ_TIMEOUT")
	if readTimeoutStr == "" {
		readTimeoutStr = "2m"
	}
	readTimeout, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return nil, fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	cfg.Server.ReadTimeout = readTimeout
	cfg.Server.WriteTimeout = readTimeout + 2*apiTimeout + 15*time.Second

	// Upload configuration (default: 100MB video, 110MB request)
	maxVideo, err := intEnv("MAX_VIDEO_SIZE_MB", 100)
	if err != nil {
		return nil, err
	}
	if maxVideo <= 0 {
		return nil, fmt.Errorf("MAX_VIDEO_SIZE_MB must be positive")
	}
	cfg.Upload.MaxVideoBytes = int64(maxVideo) << 20
	cfg.Upload.MaxRequestBytes = cfg.Upload.MaxVideoBytes + 10<<20

	return cfg, nil
}

// DSN returns the database connection string.
// clientFoundRows makes an update that changes nothing still report the matched row.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&clientFoundRows=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// parseOrigins splits a comma-separated origin list, allowing all origins when none is given
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func intEnv(name string, def int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func boolEnv(name string, def bool) (bool, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}
