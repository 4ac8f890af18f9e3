package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "clinic",
		Password:      "secret",
		Database:      "donations",
		SSLMode:       "disable",
		MaxOpenConns:  25,
		MaxIdleConns:  25,
		QueryTimeout:  5 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    1,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid config passes", func(t *testing.T) {
		require.NoError(t, validTestConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"Missing host", func(c *Config) { c.Host = "" }, "host"},
		{"Missing username", func(c *Config) { c.Username = "" }, "username"},
		{"Missing password", func(c *Config) { c.Password = "" }, "password"},
		{"Missing database name", func(c *Config) { c.Database = "" }, "name"},
		{"Port out of range", func(c *Config) { c.Port = 70000 }, "port"},
		{"Unsupported driver", func(c *Config) { c.Driver = "mysql" }, "driver"},
		{"Invalid SSL mode", func(c *Config) { c.SSLMode = "sometimes" }, "SSL"},
		{"Zero query timeout", func(c *Config) { c.QueryTimeout = 0 }, "timeout"},
		{"Negative retry attempts", func(c *Config) { c.RetryAttempts = -1 }, "retry"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("DL_DB_HOST", "db.internal")
	t.Setenv("DL_DB_PORT", "5433")
	t.Setenv("DL_DB_QUERY_TIMEOUT_SECONDS", "7")

	cfg := DefaultConfig()

	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, 7*time.Second, cfg.QueryTimeout)
	assert.Equal(t, "disable", cfg.SSLMode)
}

func TestConfigDSN(t *testing.T) {
	dsn := validTestConfig().DSN()

	assert.Equal(t, "host=localhost port=5432 user=clinic password=secret dbname=donations sslmode=disable", dsn)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5433, ParsePort("5433"))
	assert.Equal(t, 5432, ParsePort("not-a-port"))
	assert.Equal(t, 5432, ParsePort("-1"))
}
