// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"time"

	"github.com/example/gridboard/internal/models"
)

// DefaultStateKey is the namespaced key the board document is stored under.
const DefaultStateKey = "task-organizer-store"

// StateStore is the persistence port for the board document.
// Implementations store a models.StateEnvelope per key.
type StateStore interface {
	// Load returns the last saved AppData for key.
	// It returns def when nothing is stored or the stored version does not match models.StateVersion.
	Load(ctx context.Context, key string, def *models.AppData) (*models.AppData, error)

	// Save overwrites the AppData stored under key.
	Save(ctx context.Context, key string, data *models.AppData) error
}

// IDGenerator produces opaque unique identifiers for new entities.
type IDGenerator interface {
	NewID() string
}

// Clock abstracts time for export stamping.
type Clock interface {
	Now() time.Time
}

// ActivityRepository defines the secondary port for the board activity log.
type ActivityRepository interface {
	// Create persists a new activity record.
	Create(ctx context.Context, record *ActivityRecord) error

	// List returns activity records, newest first.
	List(ctx context.Context, filters ActivityFilters) ([]*ActivityRecord, error)

	// GetNextID returns the next available activity ID.
	GetNextID(ctx context.Context) (string, error)
}

// ActivityRecord represents one audited change as stored in persistence.
type ActivityRecord struct {
	ID         string
	ActorID    string // Empty string means null
	EntityType string // grid, list, item
	EntityID   string
	Action     string // create, update, delete
	FieldName  string // Empty string means null
	OldValue   string // Empty string means null
	NewValue   string // Empty string means null
	CreatedAt  string
}

// ActivityFilters contains filter options for querying activity.
type ActivityFilters struct {
	EntityID string
	Limit    int
}
