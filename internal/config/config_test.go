package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnv("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "stepwise.yaml", `
server:
  addr: ":8080"
  static_dir: ./web
cache:
  backend: redis
  ttl: 90s
  redis:
    addr: redis:6379
    db: 2
log:
  level: debug
  format: json
`)
	cfg, err := LoadWithEnv(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "./web", cfg.Server.StaticDir)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
	assert.Equal(t, "stepwise:run:", cfg.Cache.Redis.Prefix, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "stepwise.json", `{"cache": {"backend": "none", "ttl": "1m"}, "metrics": {"enabled": false}}`)
	cfg, err := LoadWithEnv(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "stepwise.yaml", "server:\n  addr: \":8080\"\n")
	cfg, err := LoadWithEnv(path, envOf(map[string]string{
		"STEPWISE_ADDR":         ":9090",
		"STEPWISE_REDIS_ADDR":   "cache:6380",
		"STEPWISE_REDIS_DB":     "3",
		"STEPWISE_CACHE":        "redis",
		"STEPWISE_CACHE_TTL":    "2m",
		"STEPWISE_LOG_LEVEL":    "warn",
		"STEPWISE_METRICS":      "false",
		"STEPWISE_CORS_ORIGINS": "http://a.test,http://b.test",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "cache:6380", cfg.Cache.Redis.Addr)
	assert.Equal(t, 3, cfg.Cache.Redis.DB)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		_, err := LoadWithEnv("", envOf(map[string]string{"STEPWISE_CACHE": "memcached"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "memcached")
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "server:\n  port: 80\n")
		_, err := LoadWithEnv(path, noEnv)
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "bad.json", "{")
		_, err := LoadWithEnv(path, noEnv)
		require.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := LoadWithEnv("", envOf(map[string]string{"STEPWISE_CACHE_TTL": "soon"}))
		require.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		_, err := LoadWithEnv("", envOf(map[string]string{"STEPWISE_LOG_LEVEL": "verbose"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
	})

	t.Run("negative cache ttl", func(t *testing.T) {
		_, err := LoadWithEnv("", envOf(map[string]string{"STEPWISE_CACHE_TTL": "-1m"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cache.ttl")
	})

	t.Run("negative shutdown timeout", func(t *testing.T) {
		path := writeFile(t, "neg.yaml", "server:\n  shutdown_timeout: -5s\n")
		_, err := LoadWithEnv(path, noEnv)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.shutdown_timeout")
	})

	t.Run("negative limits", func(t *testing.T) {
		_, err := LoadWithEnv("", envOf(map[string]string{"STEPWISE_MAX_NODES": "-1"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limits")
	})
}

func TestLoad_Limits(t *testing.T) {
	cfg, err := LoadWithEnv("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, LimitsConfig{MaxNodes: 26, MaxEdges: 50}, cfg.Limits)

	path := writeFile(t, "limits.yaml", "limits:\n  max_nodes: 100\n")
	cfg, err = LoadWithEnv(path, envOf(map[string]string{"STEPWISE_MAX_EDGES": "0"}))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Limits.MaxNodes)
	assert.Equal(t, 0, cfg.Limits.MaxEdges)
}
