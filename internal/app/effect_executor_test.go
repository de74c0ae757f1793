package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/gridboard/internal/core/effects"
	"github.com/example/gridboard/internal/models"
)

func TestEffectExecutor_PersistThenAudit(t *testing.T) {
	store := newMockStateStore()
	logWriter := &mockLogWriter{}
	executor := NewEffectExecutor(store, testKey, logWriter, nil)

	data := models.NewAppData()
	data.Grids = append(data.Grids, models.Grid{ID: "g1", Title: "Board", Lists: []models.List{}})

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.PersistEffect{Data: data},
		effects.AuditEffect{Action: effects.ActionCreate, EntityType: effects.EntityGrid, EntityID: "g1"},
		effects.AuditEffect{Action: effects.ActionUpdate, EntityType: effects.EntityGrid, EntityID: "g1", FieldName: "title"},
		effects.AuditEffect{Action: effects.ActionDelete, EntityType: effects.EntityList, EntityID: "l1"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.saveCount)
	assert.Equal(t, []string{"create:grid:g1", "update:grid:g1:title", "delete:list:l1"}, logWriter.entries)
}

func TestEffectExecutor_PersistFailureStops(t *testing.T) {
	store := newMockStateStore()
	store.saveErr = errors.New("quota exceeded")
	logWriter := &mockLogWriter{}
	executor := NewEffectExecutor(store, testKey, logWriter, nil)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.PersistEffect{Data: models.NewAppData()},
		effects.AuditEffect{Action: effects.ActionCreate, EntityType: effects.EntityGrid, EntityID: "g1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Empty(t, logWriter.entries)
}

func TestEffectExecutor_AuditFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logWriter := &mockLogWriter{err: errors.New("table locked")}
	executor := NewEffectExecutor(newMockStateStore(), testKey, logWriter, zap.New(core))

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.AuditEffect{Action: effects.ActionCreate, EntityType: effects.EntityItem, EntityID: "i1"},
	})

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "failed to write activity", entry.Message)
	assert.Equal(t, "i1", entry.ContextMap()["entity_id"])
}

func TestEffectExecutor_NilLogWriterDropsAudits(t *testing.T) {
	executor := NewEffectExecutor(newMockStateStore(), testKey, nil, nil)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.AuditEffect{Action: effects.ActionCreate, EntityType: effects.EntityGrid, EntityID: "g1"},
	})

	assert.NoError(t, err)
}

func TestEffectExecutor_LogEffect(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	executor := NewEffectExecutor(newMockStateStore(), testKey, nil, zap.New(core))

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.LogEffect{Level: "debug", Message: "board operation skipped", Fields: map[string]any{"op": "createList"}},
		effects.NoEffect{},
		effects.LogEffect{Level: "warn", Message: "second"},
	})

	require.NoError(t, err)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "createList", logs.All()[0].ContextMap()["op"])
	assert.Equal(t, zap.WarnLevel, logs.All()[1].Level)
}

type unknownEffect struct{}

func (unknownEffect) EffectType() string { return "unknown" }

func TestEffectExecutor_UnknownEffect(t *testing.T) {
	executor := NewEffectExecutor(newMockStateStore(), testKey, nil, nil)

	err := executor.Execute(context.Background(), []effects.Effect{unknownEffect{}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown effect type")
}
