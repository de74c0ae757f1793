// Package effects defines effect types as data structures representing I/O operations.
// Board transitions in internal/core emit effects; the app layer interprets them.
// Effects are pure data - they describe what should happen, not how.
package effects

import "github.com/example/gridboard/internal/models"

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// PersistEffect asks the shell to save the full AppData document.
type PersistEffect struct {
	Data *models.AppData
}

func (e PersistEffect) EffectType() string { return "persist" }

// Audit actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entity types recorded in the audit trail.
const (
	EntityGrid = "grid"
	EntityList = "list"
	EntityItem = "item"
)

// AuditEffect records a change to a single entity in the activity log.
type AuditEffect struct {
	Action     string // create, update, delete
	EntityType string // grid, list, item
	EntityID   string
	FieldName  string // update only
	OldValue   string
	NewValue   string
}

func (e AuditEffect) EffectType() string { return "audit" }

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// NoEffect marks a transition that was already satisfied, such as selecting
// the current grid again.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
