// ABOUTME: Custom error types for the generation engine
// ABOUTME: Provides structured errors so callers can distinguish failure modes

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error on generation inputs
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UnsupportedFrameworkError represents a request for an unknown output framework
type UnsupportedFrameworkError struct {
	Framework string
}

// Error implements the error interface
func (e *UnsupportedFrameworkError) Error() string {
	return fmt.Sprintf("unsupported framework: %s", e.Framework)
}

// LowQualityScoreError represents a quality score below the generation threshold
type LowQualityScoreError struct {
	Score    int
	MinScore int
}

// Error implements the error interface
func (e *LowQualityScoreError) Error() string {
	return fmt.Sprintf("quality score %d is below the minimum %d required for generation", e.Score, e.MinScore)
}

// DepthExceededError represents a node tree deeper than the recursion guard
type DepthExceededError struct {
	MaxDepth int
	NodeID   string
}

// Error implements the error interface
func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("node tree exceeds maximum depth %d at node %s", e.MaxDepth, e.NodeID)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUnsupportedFramework checks if an error is an UnsupportedFrameworkError
func IsUnsupportedFramework(err error) bool {
	var frameworkErr *UnsupportedFrameworkError
	return errors.As(err, &frameworkErr)
}

// IsLowQualityScore checks if an error is a LowQualityScoreError
func IsLowQualityScore(err error) bool {
	var scoreErr *LowQualityScoreError
	return errors.As(err, &scoreErr)
}

// IsDepthExceeded checks if an error is a DepthExceededError
func IsDepthExceeded(err error) bool {
	var depthErr *DepthExceededError
	return errors.As(err, &depthErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
