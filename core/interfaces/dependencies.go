// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the generation engine

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides optional result caching; nil disables caching
	Cache Cache

	// Logger provides structured logging
	Logger Logger
}
