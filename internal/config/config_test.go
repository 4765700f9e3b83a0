package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[logs]
level = "debug"

[storage]
driver = "postgres"

[storage.postgres]
host = "db"
user = "sia"
dbname = "sia"

[app]
timezone = "Europe/London"
backup_cron = "0 3 * * *"

[auth]
default_username = "admin"
default_password = "change-me-now"
jwt_secret = "0123456789abcdef0123"

[mail]
enabled = true
host = "smtp.example.com"
from = "bookings@example.com"

[ratelimit]
trusted_proxies = ["10.0.0.0/8", "192.0.2.10"]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvDBPassword, "from-env")
	t.Setenv(EnvJWTSecret, "")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 5432, cfg.Storage.Postgres.Port)
	assert.Equal(t, "from-env", cfg.Storage.Postgres.Password)
	assert.Equal(t, "0123456789abcdef0123", cfg.Auth.JWTSecret)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Contains(t, cfg.Storage.Postgres.DSN(), "password=from-env")
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10"}, cfg.RateLimit.TrustedProxies)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Auth = AuthConfig{DefaultUsername: "admin", DefaultPassword: "long-enough", JWTSecret: "0123456789abcdef"}
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "sqlite" }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"unknown timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }},
		{"postgres without host", func(c *Config) { c.Storage.Driver = DriverPostgres }},
		{"mail without sender", func(c *Config) { c.Mail.Enabled = true; c.Mail.Host = "smtp" }},
		{"recaptcha without secret", func(c *Config) { c.Recaptcha.Enabled = true }},
		{"trusted proxy is not an address", func(c *Config) { c.RateLimit.TrustedProxies = []string{"proxy.local"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
