package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Messenger MessengerConfig
	Store     StoreConfig
	Outbox    OutboxConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// URL the bot is reachable at, including protocol. Template images are
	// served from here.
	URL string
	// StaticDir is served read-only; template images live in its assets/
	StaticDir string
}

// MessengerConfig holds Messenger Platform credentials
type MessengerConfig struct {
	AppSecret       string
	ValidationToken string
	PageAccessToken string
	GraphURL        string
	SetGreeting     bool
}

// StoreConfig holds in-memory store settings
type StoreConfig struct {
	EventIDBase  int
	SeedDemo     bool
	DebugEnabled bool
	DedupeTTL    time.Duration
}

// OutboxConfig holds outbound delivery settings
type OutboxConfig struct {
	QueueSize   int
	Workers     int
	SendTimeout time.Duration
}

// RateLimitConfig holds webhook rate limiting settings
type RateLimitConfig struct {
	Rate   int
	Window time.Duration
	Burst  int
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first if present;
// variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	env := getEnv("SERVER_ENV", "development")

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", getEnv("PORT", "5000")),
			Env:          env,
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			URL:          getEnv("SERVER_URL", ""),
			StaticDir:    getEnv("SERVER_STATIC_DIR", "public"),
		},
		Messenger: MessengerConfig{
			AppSecret:       getEnv("MESSENGER_APP_SECRET", ""),
			ValidationToken: getEnv("MESSENGER_VALIDATION_TOKEN", ""),
			PageAccessToken: getEnv("MESSENGER_PAGE_ACCESS_TOKEN", ""),
			GraphURL:        getEnv("MESSENGER_GRAPH_URL", "https://graph.facebook.com/v2.6"),
			SetGreeting:     getBoolEnv("MESSENGER_SET_GREETING", true),
		},
		Store: StoreConfig{
			EventIDBase:  getIntEnv("STORE_EVENT_ID_BASE", 1000),
			SeedDemo:     getBoolEnv("STORE_SEED_DEMO", false),
			DebugEnabled: getBoolEnv("DEBUG_COMMANDS_ENABLED", env != "production"),
			DedupeTTL:    getDurationEnv("STORE_DEDUPE_TTL", 10*time.Minute),
		},
		Outbox: OutboxConfig{
			QueueSize:   getIntEnv("SEND_QUEUE_SIZE", 256),
			Workers:     getIntEnv("SEND_WORKERS", 2),
			SendTimeout: getDurationEnv("SEND_TIMEOUT", 15*time.Second),
		},
		RateLimit: RateLimitConfig{
			Rate:   getIntEnv("RATE_LIMIT_PER_MINUTE", 600),
			Window: time.Minute,
			Burst:  getIntEnv("RATE_LIMIT_BURST", 100),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if c.Server.URL == "" {
		errs = append(errs, errors.New("SERVER_URL is required"))
	}

	// Messenger validation - the bot cannot verify or reply without these
	if err := c.Messenger.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("messenger: %w", err))
	}

	if c.Store.EventIDBase < 0 {
		errs = append(errs, errors.New("STORE_EVENT_ID_BASE must not be negative"))
	}
	if c.Outbox.QueueSize <= 0 {
		errs = append(errs, errors.New("SEND_QUEUE_SIZE must be positive"))
	}
	if c.Outbox.Workers <= 0 {
		errs = append(errs, errors.New("SEND_WORKERS must be positive"))
	}
	if c.RateLimit.Rate <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be positive"))
	}

	if c.IsProduction() && c.Store.DebugEnabled {
		errs = append(errs, errors.New("DEBUG_COMMANDS_ENABLED must be false in production"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks that all Messenger credentials are present
func (m MessengerConfig) Validate() error {
	var missing []string
	if m.AppSecret == "" {
		missing = append(missing, "MESSENGER_APP_SECRET")
	}
	if m.ValidationToken == "" {
		missing = append(missing, "MESSENGER_VALIDATION_TOKEN")
	}
	if m.PageAccessToken == "" {
		missing = append(missing, "MESSENGER_PAGE_ACCESS_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
