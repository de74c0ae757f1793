package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

// StateRepository implements secondary.StateStore with SQLite.
// Each key holds one JSON state envelope in kv_state.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new SQLite state repository.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load returns the document stored under key.
// def is returned when the key is absent or was written by another state version.
func (r *StateRepository) Load(ctx context.Context, key string, def *models.AppData) (*models.AppData, error) {
	var (
		value   string
		version int
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT value, version FROM kv_state WHERE key = ?",
		key,
	).Scan(&value, &version)

	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state %s: %w", key, err)
	}
	if version != models.StateVersion {
		return def, nil
	}

	var envelope models.StateEnvelope
	if err := json.Unmarshal([]byte(value), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode state %s: %w", key, err)
	}
	if envelope.Version != models.StateVersion {
		return def, nil
	}
	return &envelope.State, nil
}

// Save writes the document under key, replacing any previous value.
func (r *StateRepository) Save(ctx context.Context, key string, data *models.AppData) error {
	value, err := json.Marshal(models.StateEnvelope{State: *data, Version: models.StateVersion})
	if err != nil {
		return fmt.Errorf("failed to encode state %s: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv_state (key, value, version, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, version = excluded.version, updated_at = CURRENT_TIMESTAMP`,
		key,
		string(value),
		models.StateVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to save state %s: %w", key, err)
	}

	return nil
}

// Ensure StateRepository implements the interface
var _ secondary.StateStore = (*StateRepository)(nil)
