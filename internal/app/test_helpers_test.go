package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.StateStore  = (*mockStateStore)(nil)
	_ secondary.IDGenerator = (*sequenceIDs)(nil)
	_ secondary.LogWriter   = (*mockLogWriter)(nil)
	_ secondary.Clock       = fixedClock{}
)

// mockStateStore implements secondary.StateStore for testing.
// Values are stored as JSON so callers never share memory with the store.
type mockStateStore struct {
	values    map[string][]byte
	saveCount int
	saveErr   error
	loadErr   error
}

func newMockStateStore() *mockStateStore {
	return &mockStateStore{values: make(map[string][]byte)}
}

func (m *mockStateStore) Load(ctx context.Context, key string, def *models.AppData) (*models.AppData, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	raw, ok := m.values[key]
	if !ok {
		return def, nil
	}
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (m *mockStateStore) Save(ctx context.Context, key string, data *models.AppData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	m.values[key] = raw
	m.saveCount++
	return nil
}

// sequenceIDs implements secondary.IDGenerator with predictable ids.
type sequenceIDs struct {
	prefix string
	next   int
	queue  []string // returned first when non-empty
}

func (s *sequenceIDs) NewID() string {
	if len(s.queue) > 0 {
		id := s.queue[0]
		s.queue = s.queue[1:]
		return id
	}
	s.next++
	return fmt.Sprintf("%s%d", s.prefix, s.next)
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	entries []string
	err     error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.entries = append(m.entries, "create:"+entityType+":"+entityID)
	return m.err
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	m.entries = append(m.entries, "update:"+entityType+":"+entityID+":"+fieldName)
	return m.err
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	m.entries = append(m.entries, "delete:"+entityType+":"+entityID)
	return m.err
}

// fixedClock implements secondary.Clock for testing.
type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }
