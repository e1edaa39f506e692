// Package core contains the business logic for the design-to-code engine.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (DesignNode, GenerationResult, etc.)
// - layout: Auto Layout analysis over imported design nodes
// - semantic: Name and text classification into semantic HTML tags
// - tailwind: Utility class generation (spacing, sizing, color, typography)
// - builder: Tree walk that assembles the output document
// - generation: Orchestrating service with gating, caching, and batching
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "codegen-app-api/core/domain"
//	    "codegen-app-api/core/generation"
//	    "codegen-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := generation.NewService(deps, generation.Config{
//	    MinQualityScore: 60,
//	    MaxDepth:        100,
//	})
//
//	// Generate code
//	result := svc.Generate(ctx, node, domain.DefaultOptions(), qualityScore)
//	if result.Status == domain.StatusFailed {
//	    // result.ErrorMessage explains the failure
//	}
package core
