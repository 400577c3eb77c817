package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[logs]
level = "debug"
file = ""

[barber_api]
url = "https://api.barbershop.test/api"
timeout = 5

[dashboard]
business_id = "biz-1"
default_limit = 20

[database]
enabled = true
host = "localhost"
dbname = "dashboard"
user = "dashboard"

[cache]
enabled = true
ttl = 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("BARBER_API_TOKEN", "from-env")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "from-env", cfg.BarberAPI.Token)
	assert.Equal(t, 5, cfg.BarberAPI.Timeout)
	assert.Equal(t, "biz-1", cfg.Dashboard.BusinessID)
	assert.Equal(t, 20, cfg.Dashboard.DefaultLimit)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, 60, cfg.Cache.TTL)

	assert.Equal(t,
		"host=localhost port=5432 user=dashboard password=secret dbname=dashboard sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.BarberAPI.URL = "http://localhost:3000/api"
		cfg.Dashboard.BusinessID = "biz"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no api url", mutate: func(c *Config) { c.BarberAPI.URL = "" }},
		{name: "relative api url", mutate: func(c *Config) { c.BarberAPI.URL = "/api" }},
		{name: "no business", mutate: func(c *Config) { c.Dashboard.BusinessID = "  " }},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "limit too large", mutate: func(c *Config) { c.Dashboard.DefaultLimit = 500 }},
		{name: "db without host", mutate: func(c *Config) { c.Database.Enabled = true }},
		{name: "cache without ttl", mutate: func(c *Config) { c.Cache.Enabled = true; c.Cache.TTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
