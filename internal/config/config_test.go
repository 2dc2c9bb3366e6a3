package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
signing_key = "key"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, SeedSourceDemo, cfg.Seed.Source)
	assert.Equal(t, time.Hour, cfg.Auth.TTL())
	assert.Equal(t, "123456", cfg.Auth.SharedSecret)
	assert.True(t, cfg.Seed.BaseTime().IsZero())
	assert.Empty(t, cfg.Confirmation.URL)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrLoadConfig)

	_, err = Load(writeConfig(t, `[server`))
	assert.ErrorIs(t, err, ErrLoadConfig)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Auth.SigningKey = "key"
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "unknown source", mutate: func(c *Config) { c.Seed.Source = "redis" }},
		{name: "file source without path", mutate: func(c *Config) { c.Seed.Source = SeedSourceFile }},
		{name: "postgres without dbname", mutate: func(c *Config) { c.Seed.Source = SeedSourcePostgres }},
		{name: "malformed base date", mutate: func(c *Config) { c.Seed.BaseDate = "09.03.2025" }},
		{name: "no shared secret", mutate: func(c *Config) { c.Auth.SharedSecret = "" }},
		{name: "no signing key", mutate: func(c *Config) { c.Auth.SigningKey = "" }},
		{name: "ttl", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSeedConfig_BaseTime(t *testing.T) {
	s := SeedConfig{BaseDate: "2025-03-09"}
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), s.BaseTime())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "agenda", Password: "pw", DBName: "agenda", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=agenda password=pw dbname=agenda sslmode=disable", d.DSN())
}
