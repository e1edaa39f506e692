// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - logger/standard: Simple structured logger implementation
// - logger/logrus: JSON structured logger built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include timeouts and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # Logger
//
// The loggers support structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("Generated code", map[string]interface{}{
//	    "node_id":   "1:23",
//	    "framework": "html_tailwind",
//	})
package infrastructure
