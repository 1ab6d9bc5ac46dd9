// Package config provides configuration loading from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Transport selection for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Default knobs for the Deep Visibility poll loop and caches.
const (
	DefaultDVPollIntervalMs        = 1000
	DefaultDVMaxPollAttempts       = 30
	DefaultReputationCacheMaxItems = 512
)

// Config holds all configuration for the MCP server. It is built once at
// startup and treated as immutable for the process lifetime.
type Config struct {
	APIBase   string // SENTINELONE_API_BASE, required; trailing slash stripped
	APIKey    string // SENTINELONE_API_KEY, required
	Transport string // MCP_TRANSPORT, "stdio" (default) or "http"
	Port      int    // MCP_PORT (or PORT), default 3000; used by http transport
	AuthToken string // MCP_AUTH_TOKEN, required when transport is http

	HTTPClientTimeout time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 30000ms (30s)

	DVPollInterval    time.Duration // DV_POLL_INTERVAL_MS, default 1000ms
	DVMaxPollAttempts int           // DV_MAX_POLL_ATTEMPTS, default 30

	ReputationCacheMaxItems int // REPUTATION_CACHE_MAX_ITEMS, default 512

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible
// defaults. Call Validate before using the result.
func Load() *Config {
	port := getEnvInt("MCP_PORT", 0)
	if port == 0 {
		port = getEnvInt("PORT", 3000)
	}

	return &Config{
		APIBase:   strings.TrimSuffix(os.Getenv("SENTINELONE_API_BASE"), "/"),
		APIKey:    os.Getenv("SENTINELONE_API_KEY"),
		Transport: getEnvString("MCP_TRANSPORT", TransportStdio),
		Port:      port,
		AuthToken: os.Getenv("MCP_AUTH_TOKEN"),

		HTTPClientTimeout: getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 30000),

		DVPollInterval:    getEnvDurationMs("DV_POLL_INTERVAL_MS", DefaultDVPollIntervalMs),
		DVMaxPollAttempts: getEnvInt("DV_MAX_POLL_ATTEMPTS", DefaultDVMaxPollAttempts),

		ReputationCacheMaxItems: getEnvInt("REPUTATION_CACHE_MAX_ITEMS", DefaultReputationCacheMaxItems),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// Validate checks required values and bounds. The process must refuse to
// start when it returns an error.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("SENTINELONE_API_KEY environment variable is required")
	}
	if c.APIBase == "" {
		return errors.New("SENTINELONE_API_BASE environment variable is required")
	}
	u, err := url.Parse(c.APIBase)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SENTINELONE_API_BASE must be a valid URL (e.g. https://usea1.sentinelone.net), got %q", c.APIBase)
	}

	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("MCP_TRANSPORT must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Transport)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("MCP_PORT must be between 1 and 65535, got %d", c.Port)
	}

	if c.Transport == TransportHTTP && c.AuthToken == "" {
		return errors.New("MCP_AUTH_TOKEN is required when MCP_TRANSPORT is \"http\"")
	}

	return nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
