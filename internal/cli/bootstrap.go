// Package cli provides CLI commands for the gridboard application.
package cli

import (
	"context"

	"github.com/example/gridboard/internal/ctxutil"
)

// globalActorID stores the detected actor ID for the current CLI invocation.
// Set once at startup by DetectAndStoreActor().
var globalActorID string

// DetectAndStoreActor detects the local actor and stores it globally.
// Should be called once at CLI startup in PersistentPreRun.
func DetectAndStoreActor() {
	globalActorID = ctxutil.ActorFromEnv()
}

// GetActorID returns the stored actor ID from CLI startup.
func GetActorID() string {
	return globalActorID
}

// NewContext creates a context.Background() with the current actor ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	ctx := context.Background()
	if globalActorID != "" {
		return ctxutil.WithActorID(ctx, globalActorID)
	}
	return ctx
}
