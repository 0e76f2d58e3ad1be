package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server ServerConfig
	Mail   MailConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	mail, err := loadMailConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Mail: mail}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// MailConfig describes the emergency-notification provider. Without an API
// key the dispatcher degrades to a logged no-op.
type MailConfig struct {
	APIKey     string
	AdminEmail string
	FromEmail  string
	BaseURL    string
	Timeout    time.Duration
}

// Enabled reports whether the required credential is present.
func (c MailConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadMailConfig() (MailConfig, error) {
	timeoutSeconds := 10
	if override, err := parseOptionalIntEnv("MAIL_TIMEOUT_SECONDS"); err != nil {
		return MailConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return MailConfig{}, fmt.Errorf("MAIL_TIMEOUT_SECONDS must be positive, got %d", *override)
		}
		timeoutSeconds = *override
	}

	return MailConfig{
		APIKey:     strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		AdminEmail: getEnvOrDefault("ADMIN_EMAIL", "admin@ruangtenang.com"),
		FromEmail:  getEnvOrDefault("FROM_EMAIL", "noreply@ruangtenang.com"),
		BaseURL:    getEnvOrDefault("SENDGRID_BASE_URL", ""),
		Timeout:    time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
