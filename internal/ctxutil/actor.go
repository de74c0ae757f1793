// Package ctxutil carries request-scoped values through context.
// It imports nothing from this module so any layer can use it.
package ctxutil

import (
	"context"
	"os"
)

// ActorKey is the context key for the actor recorded in the activity log.
type ActorKey struct{}

// WithActorID returns a context tagged with actorID.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the actor id, or "" when none was set.
func ActorFromContext(ctx context.Context) string {
	actorID, _ := ctx.Value(ActorKey{}).(string)
	return actorID
}

// ActorFromEnv resolves the local actor: GRIDBOARD_ACTOR, then USER.
func ActorFromEnv() string {
	if actor := os.Getenv("GRIDBOARD_ACTOR"); actor != "" {
		return actor
	}
	return os.Getenv("USER")
}
