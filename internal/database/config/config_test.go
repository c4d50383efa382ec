package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		User:     "club",
		Password: "s3cret",
		DBName:   "registry",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	dsn := BuildDSN(cfg)

	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "password=s3cret")
	assert.Contains(t, dsn, "dbname=registry")
}

func TestSanitizeError(t *testing.T) {
	cfg := Config{Host: "localhost", User: "club", Password: "s3cret", DBName: "registry", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}

	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, cfg))
	})

	t.Run("strips password", func(t *testing.T) {
		err := SanitizeError(errors.New("dial failed: password=s3cret rejected"), cfg)
		assert.NotContains(t, err.Error(), "s3cret")
		assert.Contains(t, err.Error(), "***")
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "2")

	cfg := LoadRetryConfigFromEnv()

	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Positive(t, cfg.InitialDelay)
}
