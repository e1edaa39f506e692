// ABOUTME: Main entry point for the design-to-code generation CLI
// ABOUTME: Wires together config, logger, cache, and the generation engine

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"codegen-app-api/core/domain"
	"codegen-app-api/core/generation"
	"codegen-app-api/core/interfaces"
	"codegen-app-api/infrastructure/cache/memory"
	"codegen-app-api/infrastructure/cache/redis"
	logruslogger "codegen-app-api/infrastructure/logger/logrus"
	stdlogger "codegen-app-api/infrastructure/logger/standard"
	"codegen-app-api/pkg/config"
	"codegen-app-api/pkg/featureflags"
)

func main() {
	var (
		inputPath    = flag.String("input", "", "path to the design node tree JSON (required)")
		outputPath   = flag.String("output", "", "path to write generated code (default stdout)")
		framework    = flag.String("framework", string(domain.FrameworkHTMLTailwind), "output framework: html_tailwind, react_jsx, vue_sfc")
		qualityScore = flag.Int("score", 100, "externally computed quality score in [0,100]")
		includeGrid  = flag.Bool("grid", true, "allow CSS Grid output for qualifying containers")
		responsive   = flag.Bool("responsive", true, "emit responsive class variants")
		minify       = flag.Bool("minify", false, "minify the generated output")
		comments     = flag.Bool("comments", false, "annotate containers with name comments")
		metadataOut  = flag.String("metadata", "", "optional path to write generation metadata JSON")
	)
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	var logger interfaces.Logger
	switch cfg.Logger.Type {
	case "logrus":
		logger = logruslogger.NewLogrusLogger(cfg.Logger.Level)
	default:
		logger = stdlogger.NewStandardLoggerWithLevel(cfg.Logger.Level)
	}

	logger.Info("Starting code generation", map[string]interface{}{
		"input":      *inputPath,
		"framework":  *framework,
		"score":      *qualityScore,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	flags := featureflags.NewEnvManager("CODEGEN_FEATURE_")
	var cache interfaces.Cache
	if flags.IsEnabled(context.Background(), featureflags.CacheEnabled) {
		switch cfg.Cache.Type {
		case "redis":
			redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
			if err != nil {
				logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
					"error": err.Error(),
				})
				cache = newMemoryCache(cfg)
			} else {
				cache = redisCache
			}
		case "memory":
			cache = newMemoryCache(cfg)
		}
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	service := generation.NewService(deps, generation.Config{
		MinQualityScore: cfg.Engine.MinQualityScore,
		MaxDepth:        cfg.Engine.MaxDepth,
		IncludeMetaTags: cfg.Engine.IncludeMetaTags,
		HueColorNames:   flags.IsEnabled(context.Background(), featureflags.HueColorNames),
		ResultCacheTTL:  time.Duration(cfg.Engine.ResultCacheTTL) * time.Second,
	})

	node, err := loadNode(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load design tree: %v", err)
	}

	options := domain.GenerationOptions{
		Framework:         domain.Framework(*framework),
		IncludeResponsive: *responsive,
		IncludeGrid:       *includeGrid,
		MinifyOutput:      *minify,
		IncludeComments:   *comments,
		UseGrid:           *includeGrid,
	}

	result := service.Generate(context.Background(), node, options, *qualityScore)
	if result.Status == domain.StatusFailed {
		log.Fatalf("Generation failed: %s", result.ErrorMessage)
	}

	if err := writeOutput(*outputPath, result.HTMLCode); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *metadataOut != "" {
		data, _ := json.MarshalIndent(result.Metadata, "", "  ")
		if err := os.WriteFile(*metadataOut, data, 0o644); err != nil {
			log.Fatalf("Failed to write metadata: %v", err)
		}
	}

	logger.Info("Generation complete", map[string]interface{}{
		"result_id":   result.ID,
		"total_lines": result.Metadata.TotalLines,
		"quality":     result.Metadata.CodeQualityScore,
		"elapsed_ms":  result.GenerationTimeMS,
	})
}

// newMemoryCache builds the in-process cache from config.
func newMemoryCache(cfg *config.Config) interfaces.Cache {
	return memory.NewMemoryCache(
		time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second,
		time.Duration(cfg.Cache.Memory.CleanupInterval)*time.Second,
	)
}

// loadNode reads and decodes the design node tree from a JSON file.
func loadNode(path string) (*domain.DesignNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var node domain.DesignNode
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing node tree: %w", err)
	}
	return &node, nil
}

// writeOutput writes the generated code to a file, or stdout when no path
// was given.
func writeOutput(path, code string) error {
	if path == "" {
		_, err := fmt.Println(code)
		return err
	}
	return os.WriteFile(path, []byte(code), 0o644)
}
