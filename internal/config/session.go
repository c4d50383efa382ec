package config

import (
	"fmt"
	"time"
)

// SessionConfig holds admin session cookie configuration.
type SessionConfig struct {
	// Secret is the key used to authenticate session cookies.
	Secret string
	// CookieName is the name of the session cookie.
	CookieName string
	// MaxAge is how long an admin session stays valid.
	MaxAge time.Duration
	// Secure restricts the cookie to HTTPS requests.
	Secure bool
}

// LoadSessionConfigFromEnv loads session configuration from environment variables.
func LoadSessionConfigFromEnv() SessionConfig {
	return SessionConfig{
		Secret:     GetEnv("SESSION_SECRET", ""),
		CookieName: GetEnv("SESSION_COOKIE_NAME", "club_admin_session"),
		MaxAge:     GetEnvDuration("SESSION_MAX_AGE", 12*time.Hour),
		Secure:     GetEnvBool("SESSION_SECURE", false),
	}
}

// Validate validates session configuration.
func (c SessionConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if len(c.Secret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	if c.CookieName == "" {
		return fmt.Errorf("session cookie name cannot be empty")
	}
	if c.MaxAge <= 0 {
		return fmt.Errorf("session MaxAge must be greater than 0")
	}
	return nil
}
