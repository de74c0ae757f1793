// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

// StateFile implements secondary.StateStore with one JSON file per key.
type StateFile struct {
	dir string
}

// NewStateFile creates a file-backed state store rooted at dir.
// If dir is empty, defaults to ~/.gridboard.
func NewStateFile(dir string) (*StateFile, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".gridboard")
	}
	return &StateFile{dir: dir}, nil
}

// Path returns the file that holds key.
func (s *StateFile) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the document stored under key.
// def is returned when the file is missing or was written by another state version.
func (s *StateFile) Load(ctx context.Context, key string, def *models.AppData) (*models.AppData, error) {
	raw, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state %s: %w", key, err)
	}

	var envelope models.StateEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode state %s: %w", key, err)
	}
	if envelope.Version != models.StateVersion {
		return def, nil
	}
	return &envelope.State, nil
}

// Save writes the document under key.
// The file is replaced atomically so readers never see a partial write.
func (s *StateFile) Save(ctx context.Context, key string, data *models.AppData) error {
	raw, err := json.Marshal(models.StateEnvelope{State: *data, Version: models.StateVersion})
	if err != nil {
		return fmt.Errorf("failed to encode state %s: %w", key, err)
	}
	if err := writeFileAtomic(s.Path(key), raw); err != nil {
		return fmt.Errorf("failed to save state %s: %w", key, err)
	}
	return nil
}

// writeFileAtomic writes to a temp file in the target directory and renames it into place.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Ensure StateFile implements the interface
var _ secondary.StateStore = (*StateFile)(nil)
