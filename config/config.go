package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Notes client specifics
	NotesAPI NotesAPIConfig
	Store    StoreConfig
	Fallback FallbackConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// NotesAPIConfig points at the remote notes REST API.
type NotesAPIConfig struct {
	URL             string
	Timeout         time.Duration
	RateLimitPerSec float64 // outbound requests per second, 0 disables throttling
	RateBurst       int
}

// StoreConfig sizes the page window and the recent-notes preview.
type StoreConfig struct {
	PageSize    int
	RecentLimit int
}

// FallbackConfig selects where the last successful page is persisted.
type FallbackConfig struct {
	Driver string // "sqlite" or "memory"
	Path   string // sqlite database file
	Key    string // fixed key the page is stored under
}

const (
	FallbackDriverSQLite = "sqlite"
	FallbackDriverMemory = "memory"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/notes-client/
func Load() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/notes-client/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Remote API
	cfg.NotesAPI.URL = strings.TrimRight(v.GetString("notes_api.url"), "/")
	if apiURL := v.GetString("notes_api_url"); apiURL != "" {
		cfg.NotesAPI.URL = strings.TrimRight(apiURL, "/")
	}
	cfg.NotesAPI.Timeout = v.GetDuration("notes_api.timeout")
	cfg.NotesAPI.RateLimitPerSec = v.GetFloat64("notes_api.rate_limit_per_sec")
	cfg.NotesAPI.RateBurst = v.GetInt("notes_api.rate_burst")

	// Store
	cfg.Store.PageSize = v.GetInt("store.page_size")
	cfg.Store.RecentLimit = v.GetInt("store.recent_limit")

	// Fallback cache
	cfg.Fallback.Driver = v.GetString("fallback.driver")
	cfg.Fallback.Path = v.GetString("fallback.path")
	cfg.Fallback.Key = v.GetString("fallback.key")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8090)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("rate_limit.requests_per_min", 600)

	v.SetDefault("notes_api.url", "http://localhost:8000")
	v.SetDefault("notes_api.timeout", "10s")
	v.SetDefault("notes_api.rate_limit_per_sec", 20)
	v.SetDefault("notes_api.rate_burst", 5)

	v.SetDefault("store.page_size", 6)
	v.SetDefault("store.recent_limit", 3)

	v.SetDefault("fallback.driver", FallbackDriverSQLite)
	v.SetDefault("fallback.path", "notes-cache.db")
	v.SetDefault("fallback.key", "notes")
}

// Validate checks the values that would otherwise fail deep inside the client.
func (cfg *Config) Validate() error {
	if cfg.NotesAPI.URL == "" {
		return fmt.Errorf("notes_api.url is required")
	}
	if cfg.Store.PageSize <= 0 {
		return fmt.Errorf("store.page_size must be positive, got %d", cfg.Store.PageSize)
	}
	if cfg.Store.RecentLimit <= 0 {
		return fmt.Errorf("store.recent_limit must be positive, got %d", cfg.Store.RecentLimit)
	}
	if cfg.Fallback.Key == "" {
		return fmt.Errorf("fallback.key is required")
	}

	switch cfg.Fallback.Driver {
	case FallbackDriverSQLite:
		if cfg.Fallback.Path == "" {
			return fmt.Errorf("fallback.path is required for the sqlite driver")
		}
	case FallbackDriverMemory:
	default:
		return fmt.Errorf("unknown fallback.driver %q", cfg.Fallback.Driver)
	}

	return nil
}

// splitList splits a comma-separated value, since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
