package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "data/fieldsync.db", c.DBPath)
	assert.Equal(t, time.Minute, c.SyncTimeout)
	assert.Equal(t, BackendPresigned, c.ObjectStore.Backend)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("FIELDSYNC_SERVER_ADDR", "env:1")
	t.Setenv("FIELDSYNC_DB_PATH", "env.db")
	t.Setenv("FIELDSYNC_OBJECT_STORE_BACKEND", "minio")

	path := writeTempJSON(t, "", "", map[string]any{
		"db_path": "json.db",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "flag:2"}

	cfg := LoadConfig()

	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "json.db", cfg.DBPath)
	assert.Equal(t, BackendMinio, cfg.ObjectStore.Backend)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("FIELDSYNC_ONLINE_CHECK_INTERVAL", "750ms")
	t.Setenv("FIELDSYNC_STATUS_FILE", "/run/net/status")
	t.Setenv("FIELDSYNC_OBJECT_STORE_USE_SSL", "true")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 750*time.Millisecond, c.OnlineCheckInterval)
	assert.Equal(t, "/run/net/status", c.StatusFile)
	assert.True(t, c.ObjectStore.UseSSL)
}

func TestParseEnv_InvalidPanics(t *testing.T) {
	t.Setenv("FIELDSYNC_SYNC_TIMEOUT", "forever")

	var c Config
	require.Panics(t, func() { parseEnv(&c) })
}
