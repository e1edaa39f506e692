// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the engine, cache, and logger settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Engine contains generation engine configuration
	Engine EngineConfig `yaml:"engine"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Logger contains logger configuration
	Logger LoggerConfig `yaml:"logger"`
}

// EngineConfig holds generation engine configuration
type EngineConfig struct {
	// MinQualityScore is the minimum quality score required before any
	// tree walk begins. Observed deployments range from 60 to 90.
	MinQualityScore int `yaml:"min_quality_score"`

	// MaxDepth is the recursion guard for the tree walk; trees deeper
	// than this fail closed instead of overflowing the stack
	MaxDepth int `yaml:"max_depth"`

	// IncludeMetaTags emits viewport and description meta tags in the
	// document head
	IncludeMetaTags bool `yaml:"include_meta_tags"`

	// ResultCacheTTL is the cache lifetime for generation results in seconds
	ResultCacheTTL int `yaml:"result_cache_ttl"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/none)
	Type string `yaml:"type"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// Memory contains in-memory cache configuration
	Memory MemoryConfig `yaml:"memory"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int `yaml:"default_expiration"`

	// CleanupInterval is the purge interval for expired entries in seconds
	CleanupInterval int `yaml:"cleanup_interval"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	// Type selects the logger implementation (standard/logrus)
	Type string `yaml:"type"`

	// Level is the minimum level emitted (debug/info/warn/error)
	Level string `yaml:"level"`
}

// LoadFromEnv loads configuration from environment variables, applying an
// optional YAML overlay file named by CODEGEN_CONFIG_FILE first so explicit
// environment variables always win.
func LoadFromEnv() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CODEGEN_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Engine.MinQualityScore = getEnvAsIntOrDefault("CODEGEN_MIN_SCORE", cfg.Engine.MinQualityScore)
	cfg.Engine.MaxDepth = getEnvAsIntOrDefault("CODEGEN_MAX_DEPTH", cfg.Engine.MaxDepth)
	cfg.Engine.IncludeMetaTags = getEnvAsBoolOrDefault("CODEGEN_INCLUDE_META_TAGS", cfg.Engine.IncludeMetaTags)
	cfg.Engine.ResultCacheTTL = getEnvAsIntOrDefault("CODEGEN_RESULT_CACHE_TTL", cfg.Engine.ResultCacheTTL)

	cfg.Cache.Type = getEnvOrDefault("CACHE_TYPE", cfg.Cache.Type)
	cfg.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", cfg.Cache.Redis.Address)
	cfg.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", cfg.Cache.Redis.Password)
	cfg.Cache.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", cfg.Cache.Redis.DB)
	cfg.Cache.Memory.DefaultExpiration = getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", cfg.Cache.Memory.DefaultExpiration)
	cfg.Cache.Memory.CleanupInterval = getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", cfg.Cache.Memory.CleanupInterval)

	cfg.Logger.Type = getEnvOrDefault("LOGGER_TYPE", cfg.Logger.Type)
	cfg.Logger.Level = getEnvOrDefault("LOGGER_LEVEL", cfg.Logger.Level)

	return cfg, nil
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			MinQualityScore: 60,
			MaxDepth:        100,
			IncludeMetaTags: true,
			ResultCacheTTL:  3600,
		},
		Cache: CacheConfig{
			Type: "memory",
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
			Memory: MemoryConfig{
				DefaultExpiration: 3600,
				CleanupInterval:   600,
			},
		},
		Logger: LoggerConfig{
			Type:  "standard",
			Level: "info",
		},
	}
}

// loadFile overlays YAML configuration from the given path.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	if c.Engine.MinQualityScore < 0 || c.Engine.MinQualityScore > 100 {
		return errors.New("engine min quality score must be in [0,100]")
	}

	if c.Engine.MaxDepth < 1 {
		return errors.New("engine max depth must be at least 1")
	}

	switch c.Cache.Type {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("unknown cache type: %s", c.Cache.Type)
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis cache requires an address")
	}

	switch c.Logger.Type {
	case "standard", "logrus":
	default:
		return fmt.Errorf("unknown logger type: %s", c.Logger.Type)
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as an int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as a bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
