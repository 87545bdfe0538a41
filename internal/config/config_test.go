package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 15

[storage]
backend = "memory"

[database]
host = "localhost"
port = 5432
user = "lab"
password = "secret"
dbname = "lab"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "lab-booking-service"
path = "/metrics"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, BackendMemory, cfg.Storage.Backend)
		assert.Equal(t, "host=localhost port=5432 user=lab password=secret dbname=lab sslmode=disable",
			cfg.Database.DSN())
		assert.True(t, cfg.Metrics.Enabled)
	})

	t.Run("backend defaults to postgres", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8080
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8080

[storage]
backend = "redis"
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing port is rejected", func(t *testing.T) {
		path := writeConfig(t, `
[storage]
backend = "memory"
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
