package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
current_user_id: 7
http:
  port: "9090"
storage:
  driver: mongo
  mirror: true
payment:
  latency: 20ms
cart:
  driver: redis
  ttl: 2h
nats:
  subject_prefix: staging
  reconnect_wait: 250ms
catalog:
  categories:
    Hobbies: ["Guitars", "Drums"]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.CurrentUserID)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, StorageMongo, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.Mirror)
	assert.Equal(t, 20*time.Millisecond, cfg.Payment.Latency)
	assert.Equal(t, []string{"Guitars", "Drums"}, cfg.Catalog.Categories["Hobbies"])
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "redis", cfg.Cart.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "staging", cfg.NATS.SubjectPrefix)
	assert.Equal(t, 250*time.Millisecond, cfg.NATS.ReconnectWait)
	assert.Equal(t, 5, cfg.NATS.MaxReconnects)
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, int64(99), cfg.CurrentUserID)
	assert.Equal(t, 1500*time.Millisecond, cfg.Payment.Latency)
	assert.Equal(t, "memory", cfg.Cart.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "marketplace-service", cfg.NATS.ClientName)
	assert.Equal(t, 5*time.Second, cfg.NATS.ConnectTimeout)
}
