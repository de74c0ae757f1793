// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/gridboard/internal/core/effects"
	"github.com/example/gridboard/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor with real I/O.
type DefaultEffectExecutor struct {
	store     secondary.StateStore
	key       string
	logWriter secondary.LogWriter // optional
	logger    *zap.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
// logWriter may be nil, in which case audit effects are dropped.
func NewEffectExecutor(store secondary.StateStore, key string, logWriter secondary.LogWriter, logger *zap.Logger) *DefaultEffectExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultEffectExecutor{
		store:     store,
		key:       key,
		logWriter: logWriter,
		logger:    logger,
	}
}

// Execute processes a slice of effects, executing each in sequence.
// A persist failure stops execution; audit failures are logged and skipped
// because the state they describe is already saved.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.PersistEffect:
		if err := e.store.Save(ctx, e.key, typed.Data); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	case effects.AuditEffect:
		if err := e.executeAudit(ctx, typed); err != nil {
			e.logger.Warn("failed to write activity",
				zap.String("entity_type", typed.EntityType),
				zap.String("entity_id", typed.EntityID),
				zap.Error(err))
		}
		return nil
	case effects.LogEffect:
		e.executeLog(typed)
		return nil
	case effects.NoEffect:
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeAudit(ctx context.Context, eff effects.AuditEffect) error {
	if e.logWriter == nil {
		return nil
	}
	switch eff.Action {
	case effects.ActionCreate:
		return e.logWriter.LogCreate(ctx, eff.EntityType, eff.EntityID)
	case effects.ActionUpdate:
		return e.logWriter.LogUpdate(ctx, eff.EntityType, eff.EntityID, eff.FieldName, eff.OldValue, eff.NewValue)
	case effects.ActionDelete:
		return e.logWriter.LogDelete(ctx, eff.EntityType, eff.EntityID)
	default:
		return fmt.Errorf("unknown audit action: %s", eff.Action)
	}
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) {
	fields := make([]zap.Field, 0, len(eff.Fields))
	for k, v := range eff.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	switch eff.Level {
	case "debug":
		e.logger.Debug(eff.Message, fields...)
	case "warn":
		e.logger.Warn(eff.Message, fields...)
	case "error":
		e.logger.Error(eff.Message, fields...)
	default:
		e.logger.Info(eff.Message, fields...)
	}
}
