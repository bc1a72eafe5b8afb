// Package runctx provides context utilities for tracking analysis runs
package runctx

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey int

const (
	// RunIDKey is the context key for analysis-run IDs
	RunIDKey contextKey = iota
)

// NewRunID generates a new unique run ID
func NewRunID() string {
	return uuid.New().String()
}

// WithRunID adds a run ID to the context
func WithRunID(parent context.Context, runID string) context.Context {
	return context.WithValue(parent, RunIDKey, runID)
}

// RunIDFromContext extracts the run ID from the context
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}
