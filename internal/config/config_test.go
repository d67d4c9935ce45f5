package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
app:
  name: fraudshield
  environment: test
  version: 0.1.0

server:
  host: 127.0.0.1
  http_port: 8080
  read_timeout: 15s
  write_timeout: 15s
  shutdown_timeout: 10s

database:
  enabled: true
  host: localhost
  port: 5432
  user: fraud
  password: secret
  dbname: fraudshield
  sslmode: disable
  schema: public

redis:
  enabled: true
  host: localhost
  port: 6379
  key_prefix: "fraudshield:"

nats:
  enabled: false

auth:
  enabled: true
  api_keys:
    - key-one
    - key-two

scoring:
  high_risk_threshold: 80
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "fraudshield", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)

	// File value overrides the default; the untouched default survives.
	assert.Equal(t, 80, cfg.Scoring.HighRiskThreshold)
	assert.Equal(t, 30, cfg.Scoring.ThreatThreshold)
	assert.Equal(t, "eng+hin", cfg.OCR.Languages)
	assert.Equal(t, int64(10<<20), cfg.OCR.MaxBytes)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db.internal", Port: 5432, User: "fraud", Password: "pw",
		DBName: "fraudshield", SSLMode: "require", Schema: "public",
	}
	assert.Equal(t,
		"postgres://fraud:pw@db.internal:5432/fraudshield?sslmode=require&search_path=public",
		cfg.DSN())
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", cfg.Addr())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FRAUDSHIELD_DATABASE_PASSWORD", "from-env")

	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
