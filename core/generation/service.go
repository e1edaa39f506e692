// ABOUTME: Generation service: gating, depth-guarded tree walk, metadata, result caching
// ABOUTME: Expected failures become Failed results; no error escapes to the caller

package generation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"codegen-app-api/core/builder"
	"codegen-app-api/core/domain"
	"codegen-app-api/core/errors"
	"codegen-app-api/core/interfaces"
	"codegen-app-api/core/semantic"
)

// Config holds the engine settings for the generation service.
type Config struct {
	// MinQualityScore gates generation; lower scores fail before any walk
	MinQualityScore int

	// MaxDepth is the recursion guard passed to the tree builder
	MaxDepth int

	// IncludeMetaTags emits viewport and description meta tags
	IncludeMetaTags bool

	// HueColorNames enables the experimental hue-bucketed color naming
	HueColorNames bool

	// ResultCacheTTL is how long completed results stay cached
	ResultCacheTTL time.Duration
}

// Service runs the design-to-code engine. The engine itself is pure; the
// service adds gating, timing, logging, and optional result caching around
// each call. Calls are independent and safe to run concurrently.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a generation service.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 100
	}
	return &Service{deps: deps, cfg: cfg}
}

// Generate turns a design node tree into generated markup. Bad options, a
// low quality score, and the depth guard all produce a Failed result with
// empty code and zeroed metadata; Generate never panics and never returns
// an error.
func (s *Service) Generate(ctx context.Context, node *domain.DesignNode, options domain.GenerationOptions, qualityScore int) *domain.GenerationResult {
	start := time.Now()

	if node == nil {
		return s.failed(start, "no design node supplied")
	}

	if err := options.Validate(); err != nil {
		frameworkErr := &errors.UnsupportedFrameworkError{Framework: string(options.Framework)}
		s.deps.Logger.Warn("Rejected generation request", map[string]interface{}{
			"node_id": node.ID,
			"error":   frameworkErr.Error(),
		})
		return s.failed(start, frameworkErr.Error())
	}

	if qualityScore < s.cfg.MinQualityScore {
		scoreErr := &errors.LowQualityScoreError{Score: qualityScore, MinScore: s.cfg.MinQualityScore}
		s.deps.Logger.Info("Quality score below generation threshold", map[string]interface{}{
			"node_id": node.ID,
			"score":   qualityScore,
			"minimum": s.cfg.MinQualityScore,
		})
		return s.failed(start, scoreErr.Error())
	}

	// Check cache first
	cacheKey := s.cacheKey(node, options, qualityScore)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.GenerationResult
			if err := json.Unmarshal(data, &cached); err == nil {
				s.deps.Logger.Debug("Serving cached generation result", map[string]interface{}{
					"node_id": node.ID,
				})
				return &cached
			}
		}
	}

	result := s.generate(node, options, qualityScore, start)

	// Cache completed results only; failures are cheap to recompute and
	// callers may retry with fixed inputs
	if s.deps.Cache != nil && result.Status == domain.StatusCompleted {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cfg.ResultCacheTTL)
		}
	}

	return result
}

// generate runs the walk and post-processing for inputs that passed the gate.
func (s *Service) generate(node *domain.DesignNode, options domain.GenerationOptions, qualityScore int, start time.Time) *domain.GenerationResult {
	b := builder.New(options, qualityScore, builder.Config{
		MaxDepth:        s.cfg.MaxDepth,
		IncludeMetaTags: s.cfg.IncludeMetaTags,
		HueColorNames:   s.cfg.HueColorNames,
	})

	html, err := b.Build(node)
	if err != nil {
		s.deps.Logger.Error("Tree walk failed", map[string]interface{}{
			"node_id": node.ID,
			"error":   err.Error(),
		})
		return s.failed(start, err.Error())
	}

	// Scoring always runs on the pretty HTML form
	metadata := builder.ComputeMetadata(html)

	code := s.shapeOutput(html, node, options)

	result := &domain.GenerationResult{
		ID:               uuid.NewString(),
		HTMLCode:         code,
		Metadata:         metadata,
		Status:           domain.StatusCompleted,
		GenerationTimeMS: time.Since(start).Milliseconds(),
	}

	s.deps.Logger.Info("Generated code", map[string]interface{}{
		"node_id":     node.ID,
		"framework":   string(options.Framework),
		"total_lines": metadata.TotalLines,
		"components":  metadata.ComponentCount,
		"elapsed_ms":  result.GenerationTimeMS,
	})

	return result
}

// shapeOutput applies the framework wrapper and minification to the emitted
// document.
func (s *Service) shapeOutput(html string, node *domain.DesignNode, options domain.GenerationOptions) string {
	switch options.Framework {
	case domain.FrameworkReactJSX:
		return builder.WrapReactComponent(componentName(node), html)
	case domain.FrameworkVueSFC:
		return builder.WrapVueComponent(componentName(node), html)
	}

	if options.MinifyOutput {
		return builder.Minify(html)
	}
	return html
}

// GenerateBatch runs independent generation calls with bounded concurrency.
// Results are returned in request order.
func (s *Service) GenerateBatch(ctx context.Context, requests []interfaces.GenerationRequest) []*domain.GenerationResult {
	results := make([]*domain.GenerationResult, len(requests))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 5)

	for i, req := range requests {
		wg.Add(1)
		go func(idx int, req interfaces.GenerationRequest) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
				results[idx] = s.Generate(ctx, req.Node, req.Options, req.QualityScore)
			case <-ctx.Done():
				results[idx] = domain.NewFailedResult(uuid.NewString(), ctx.Err().Error(), 0)
			}
		}(i, req)
	}

	wg.Wait()
	return results
}

// failed builds a Failed result with a fresh ID and the elapsed time.
func (s *Service) failed(start time.Time, message string) *domain.GenerationResult {
	return domain.NewFailedResult(uuid.NewString(), message, time.Since(start).Milliseconds())
}

// cacheKey derives a stable key from everything that affects the output.
// The tree itself is hashed, not just its ID, so edits to a node's subtree
// never serve stale results.
func (s *Service) cacheKey(node *domain.DesignNode, options domain.GenerationOptions, qualityScore int) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode(node)
	_ = json.NewEncoder(h).Encode(options)
	fmt.Fprintf(h, "%d", qualityScore)
	return "generation:" + hex.EncodeToString(h.Sum(nil)[:16])
}

// componentName derives the PascalCase component identifier for
// component-based frameworks from the root node name.
func componentName(node *domain.DesignNode) string {
	return semantic.NewMapper().ComponentName(node.Name)
}
