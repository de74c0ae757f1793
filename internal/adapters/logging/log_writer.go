// Package logging contains a zap-backed audit writer used when no activity table exists.
package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/gridboard/internal/ctxutil"
	"github.com/example/gridboard/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter by emitting structured log entries.
type LogWriterAdapter struct {
	logger *zap.Logger
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(logger *zap.Logger) *LogWriterAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogWriterAdapter{logger: logger.Named("activity")}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType, entityID string) error {
	w.logger.Info("create", w.fields(ctx, entityType, entityID)...)
	return nil
}

// LogUpdate logs an update operation for an entity field.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	fields := append(w.fields(ctx, entityType, entityID),
		zap.String("field", fieldName),
		zap.String("old", oldValue),
		zap.String("new", newValue),
	)
	w.logger.Info("update", fields...)
	return nil
}

// LogDelete logs a delete operation for an entity.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, entityType, entityID string) error {
	w.logger.Info("delete", w.fields(ctx, entityType, entityID)...)
	return nil
}

func (w *LogWriterAdapter) fields(ctx context.Context, entityType, entityID string) []zap.Field {
	fields := []zap.Field{
		zap.String("entity_type", entityType),
		zap.String("entity_id", entityID),
	}
	if actor := ctxutil.ActorFromContext(ctx); actor != "" {
		fields = append(fields, zap.String("actor", actor))
	}
	return fields
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
