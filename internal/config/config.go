// Package config provides centralized configuration management for the
// stock monitor. It loads settings from environment variables with
// sensible defaults and validates everything on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server  ServerConfig
	Sheet   SheetConfig
	Refresh RefreshConfig
	Monitor MonitorConfig
	Webhook WebhookConfig
	Rate    RateLimitConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// SheetConfig holds Google Sheets data-source settings.
type SheetConfig struct {
	// URL is the Google Sheets URL to monitor (required).
	// Supports both SHEET_URL and SPREADSHEET_URL for compatibility.
	URL string `env:"SHEET_URL" envAlt:"SPREADSHEET_URL" required:"true"`

	// GID selects the sheet tab for the CSV export (default: 0, first tab)
	GID string `env:"SHEET_GID" default:"0"`

	// FetchTimeout bounds one export download (default: 15s)
	FetchTimeout time.Duration `env:"SHEET_FETCH_TIMEOUT" default:"15s"`
}

// RefreshConfig holds background refresh settings.
type RefreshConfig struct {
	// Enabled controls the background refresh loop (default: true).
	// When disabled, refreshes only happen via the manual API.
	Enabled bool `env:"REFRESH_ENABLED" default:"true"`

	// Interval is how often the dataset is recomputed (default: 30s)
	Interval time.Duration `env:"REFRESH_INTERVAL" default:"30s"`
}

// MonitorConfig holds classification settings.
type MonitorConfig struct {
	// CriticalThreshold is the stock level at or below which an item is
	// critical regardless of its restock level (default: 10)
	CriticalThreshold int `env:"CRITICAL_THRESHOLD" default:"10"`
}

// WebhookConfig holds restock alert settings.
type WebhookConfig struct {
	// URL is the restock webhook endpoint. Empty disables restock alerts.
	URL string `env:"WEBHOOK_URL"`
}

// RateLimitConfig holds rate limiting settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
