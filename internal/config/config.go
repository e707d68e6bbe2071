package config

import (
	"os"
	"strconv"
	"time"

	"pdf-extract-server/internal/domain"
)

const (
	defaultServerPort         = "5000"
	defaultMultipartMaxMemory = 32 << 20
	defaultShutdownTimeout    = 10 * time.Second
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	LogLevel           string
	LogFormat          string
	PDFBackend         string
	MultipartMaxMemory int64
	ShutdownTimeout    time.Duration
	Debug              bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	debug := getEnvBoolOrDefault("DEBUG", true)

	defaultLevel := "info"
	if debug {
		defaultLevel = "debug"
	}

	return &AppConfig{
		// PaaS hosts provide the listening port via PORT.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", defaultServerPort)),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", defaultLevel),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "text"),
		PDFBackend:         getEnvOrDefault("PDF_BACKEND", domain.BackendFitz),
		MultipartMaxMemory: getEnvInt64OrDefault("MULTIPART_MAX_MEMORY", defaultMultipartMaxMemory),
		ShutdownTimeout:    getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		Debug:              debug,
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns "text" or "json"
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetPDFBackend returns the name of the extraction backend
func (c *AppConfig) GetPDFBackend() string {
	return c.PDFBackend
}

// GetMultipartMaxMemory returns how much of a multipart body is kept in memory
func (c *AppConfig) GetMultipartMaxMemory() int64 {
	return c.MultipartMaxMemory
}

// GetShutdownTimeout returns the graceful shutdown drain period
func (c *AppConfig) GetShutdownTimeout() time.Duration {
	return c.ShutdownTimeout
}

// IsDebug reports whether verbose error reporting is on
func (c *AppConfig) IsDebug() bool {
	return c.Debug
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
