// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"codegen-app-api/core/domain"
)

// GenerationRequest bundles the inputs of one generation run for batch APIs.
type GenerationRequest struct {
	Node         *domain.DesignNode
	Options      domain.GenerationOptions
	QualityScore int
}

// GenerationService turns a design node tree into generated markup.
// Expected failure modes (bad framework, low score, depth guard) surface as
// failed results, never as returned errors.
type GenerationService interface {
	Generate(ctx context.Context, node *domain.DesignNode, options domain.GenerationOptions, qualityScore int) *domain.GenerationResult
	GenerateBatch(ctx context.Context, requests []GenerationRequest) []*domain.GenerationResult
}
