package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

// mockActivityRepository implements secondary.ActivityRepository for testing.
type mockActivityRepository struct {
	records     []*secondary.ActivityRecord
	lastFilters secondary.ActivityFilters
	listErr     error
}

func (m *mockActivityRepository) Create(ctx context.Context, record *secondary.ActivityRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *mockActivityRepository) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockActivityRepository) GetNextID(ctx context.Context) (string, error) {
	return "ACT-0001", nil
}

var _ secondary.ActivityRepository = (*mockActivityRepository)(nil)

func TestActivityService_ListActivity(t *testing.T) {
	repo := &mockActivityRepository{records: []*secondary.ActivityRecord{
		{ID: "ACT-0002", ActorID: "sam", EntityType: "grid", EntityID: "g1", Action: "update", FieldName: "title", OldValue: "a", NewValue: "b", CreatedAt: "2024-01-01 00:00:01"},
		{ID: "ACT-0001", EntityType: "grid", EntityID: "g1", Action: "create", CreatedAt: "2024-01-01 00:00:00"},
	}}
	svc := NewActivityService(repo)

	got, err := svc.ListActivity(context.Background(), primary.ActivityFilters{EntityID: "g1", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilters.EntityID != "g1" || repo.lastFilters.Limit != 5 {
		t.Errorf("filters not passed through: %+v", repo.lastFilters)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	first := got[0]
	if first.ID != "ACT-0002" || first.ActorID != "sam" || first.FieldName != "title" || first.OldValue != "a" || first.NewValue != "b" {
		t.Errorf("unexpected mapping: %+v", first)
	}
}

func TestActivityService_ListActivity_Error(t *testing.T) {
	repo := &mockActivityRepository{listErr: errors.New("boom")}
	svc := NewActivityService(repo)

	_, err := svc.ListActivity(context.Background(), primary.ActivityFilters{})
	if err == nil {
		t.Fatal("expected error")
	}
}
