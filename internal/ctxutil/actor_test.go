package ctxutil

import (
	"context"
	"testing"
)

func TestActorFromContext(t *testing.T) {
	ctx := context.Background()
	if got := ActorFromContext(ctx); got != "" {
		t.Errorf("expected empty actor, got %q", got)
	}

	ctx = WithActorID(ctx, "alice")
	if got := ActorFromContext(ctx); got != "alice" {
		t.Errorf("ActorFromContext = %q, want alice", got)
	}
}

func TestActorFromEnv(t *testing.T) {
	t.Setenv("USER", "bob")
	t.Setenv("GRIDBOARD_ACTOR", "")
	if got := ActorFromEnv(); got != "bob" {
		t.Errorf("ActorFromEnv = %q, want bob", got)
	}

	t.Setenv("GRIDBOARD_ACTOR", "ci")
	if got := ActorFromEnv(); got != "ci" {
		t.Errorf("ActorFromEnv = %q, want ci", got)
	}
}
