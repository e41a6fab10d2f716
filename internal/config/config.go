// Package config loads the stepwise service configuration from an optional
// YAML or JSON file plus STEPWISE_* environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/stepwise/internal/logging"
)

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server" json:"server"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache" json:"cache"`
	Log     LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
	MCP     MCPConfig     `mapstructure:"mcp" yaml:"mcp" json:"mcp"`
	Limits  LimitsConfig  `mapstructure:"limits" yaml:"limits" json:"limits"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr" json:"addr"`
	StaticDir       string        `mapstructure:"static_dir" yaml:"static_dir" json:"static_dir"`
	CORSOrigins     []string      `mapstructure:"cors_origins" yaml:"cors_origins" json:"cors_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" json:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig configures run memoization.
type CacheConfig struct {
	Backend    string        `mapstructure:"backend" yaml:"backend" json:"backend"`
	TTL        time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
	MaxEntries int           `mapstructure:"max_entries" yaml:"max_entries" json:"max_entries"`
	Redis      RedisConfig   `mapstructure:"redis" yaml:"redis" json:"redis"`
}

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr" json:"addr"`
	Password string `mapstructure:"password" yaml:"password" json:"password"`
	DB       int    `mapstructure:"db" yaml:"db" json:"db"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix" json:"prefix"`
	// LockTimeout bounds how long a replica waits for another one computing
	// the same run. Zero disables the run lock.
	LockTimeout time.Duration `mapstructure:"lock_timeout" yaml:"lock_timeout" json:"lock_timeout"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" yaml:"path" json:"path"`
}

// MCPConfig configures the MCP adapter.
type MCPConfig struct {
	Transport string `mapstructure:"transport" yaml:"transport" json:"transport"`
	Addr      string `mapstructure:"addr" yaml:"addr" json:"addr"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
}

// LimitsConfig bounds the graphs a request may carry. Zero lifts a limit.
type LimitsConfig struct {
	MaxNodes int `mapstructure:"max_nodes" yaml:"max_nodes" json:"max_nodes"`
	MaxEdges int `mapstructure:"max_edges" yaml:"max_edges" json:"max_edges"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			CORSOrigins:     []string{"*"},
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			Backend:    CacheMemory,
			TTL:        10 * time.Minute,
			MaxEntries: 256,
			Redis: RedisConfig{
				Addr:        "localhost:6379",
				Prefix:      "stepwise:run:",
				LockTimeout: 5 * time.Second,
			},
		},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		MCP:     MCPConfig{Transport: "stdio", Addr: ":8081"},
		Limits:  LimitsConfig{MaxNodes: 26, MaxEdges: 50},
	}
}

// envBindings maps environment variables to configuration paths.
var envBindings = map[string]string{
	"STEPWISE_ADDR":           "server.addr",
	"STEPWISE_STATIC_DIR":     "server.static_dir",
	"STEPWISE_CORS_ORIGINS":   "server.cors_origins",
	"STEPWISE_CACHE":          "cache.backend",
	"STEPWISE_CACHE_TTL":      "cache.ttl",
	"STEPWISE_REDIS_ADDR":     "cache.redis.addr",
	"STEPWISE_REDIS_PASSWORD": "cache.redis.password",
	"STEPWISE_REDIS_DB":       "cache.redis.db",
	"STEPWISE_LOG_LEVEL":      "log.level",
	"STEPWISE_LOG_FORMAT":     "log.format",
	"STEPWISE_METRICS":        "metrics.enabled",
	"STEPWISE_MCP_TRANSPORT":  "mcp.transport",
	"STEPWISE_MAX_NODES":      "limits.max_nodes",
	"STEPWISE_MAX_EDGES":      "limits.max_edges",
}

// Load reads the configuration file at path (YAML, or JSON by extension) on
// top of the defaults, then applies environment overrides. An empty path or
// a missing file yields the defaults.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if raw != nil {
			if err := decode(raw, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		}
	}

	if err := decode(envOverrides(lookup), cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return raw, nil
}

// envOverrides builds a nested map from the bound environment variables.
func envOverrides(lookup func(string) (string, bool)) map[string]any {
	out := map[string]any{}
	for env, path := range envBindings {
		val, ok := lookup(env)
		if !ok || val == "" {
			continue
		}
		var v any = val
		if path == "server.cors_origins" {
			v = strings.Split(val, ",")
		}
		setPath(out, strings.Split(path, "."), v)
	}
	return out
}

func setPath(m map[string]any, keys []string, v any) {
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = v
}

// decode merges raw onto cfg. Durations accept strings such as "5m".
func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks enumerated values, durations and limits.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("config: unknown cache backend %q (want none, memory or redis)", c.Cache.Backend)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w (want debug, info, warn or error)", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q (want text or json)", c.Log.Format)
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("config: unknown mcp transport %q (want stdio or sse)", c.MCP.Transport)
	}
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is empty")
	}

	durations := []struct {
		key string
		val time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"cache.ttl", c.Cache.TTL},
		{"cache.redis.lock_timeout", c.Cache.Redis.LockTimeout},
	}
	for _, d := range durations {
		if d.val < 0 {
			return fmt.Errorf("config: %s must not be negative, got %s", d.key, d.val)
		}
	}

	if c.Limits.MaxNodes < 0 || c.Limits.MaxEdges < 0 {
		return fmt.Errorf("config: limits must not be negative, got max_nodes=%d max_edges=%d",
			c.Limits.MaxNodes, c.Limits.MaxEdges)
	}
	return nil
}
