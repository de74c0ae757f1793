// Package primary defines the primary ports (driving side) of the application.
package primary

import (
	"context"

	"github.com/example/gridboard/internal/models"
)

// BoardService defines the primary port for grid, list and item operations.
// Operations whose precondition fails are no-ops and return a nil error.
// A non-nil error means the state could not be persisted and nothing changed.
type BoardService interface {
	// Snapshot returns a deep copy of the whole board document.
	Snapshot(ctx context.Context) *models.AppData

	// CurrentGrid returns a copy of the current grid, or nil.
	CurrentGrid(ctx context.Context) *models.Grid

	// CreateGrid appends a grid and selects it. An empty title uses the default.
	CreateGrid(ctx context.Context, title string) (string, error)

	// EnsureDefaultGrid creates the starter grid when there are no grids.
	// Returns the id of the created grid or "".
	EnsureDefaultGrid(ctx context.Context) (string, error)

	// DeleteGrid removes a grid with all its lists and items.
	DeleteGrid(ctx context.Context, gridID string) error

	// SelectGrid makes a grid current.
	SelectGrid(ctx context.Context, gridID string) error

	// UpdateGridTitle renames the current grid.
	UpdateGridTitle(ctx context.Context, title string) error

	// CreateList appends a list to the current grid. Returns "" when skipped.
	CreateList(ctx context.Context, title string) (string, error)

	// UpdateList merges the set fields into a list of the current grid.
	UpdateList(ctx context.Context, listID string, upd models.ListUpdate) error

	// DeleteList removes a list and its items from the current grid.
	DeleteList(ctx context.Context, listID string) error

	// AddItem appends an item to a list. Returns "" when skipped.
	AddItem(ctx context.Context, listID, title string) (string, error)

	// UpdateItem replaces the item matching item.ID within the list.
	UpdateItem(ctx context.Context, listID string, item models.Item) error

	// DeleteItem removes an item from a list.
	DeleteItem(ctx context.Context, listID, itemID string) error

	// ReorderLists restamps list order from the full id sequence.
	ReorderLists(ctx context.Context, listIDs []string) error

	// ReorderItems restamps item order within a list from the full id sequence.
	ReorderItems(ctx context.Context, listID string, itemIDs []string) error

	// MoveItem moves an item between lists of the current grid in one step.
	MoveItem(ctx context.Context, req models.MoveItemRequest) error

	// Reload replaces in-memory state with what the persistence port holds.
	Reload(ctx context.Context) error
}

// TransferService defines the primary port for backup export and import.
type TransferService interface {
	// Export renders the board document as an export file.
	Export(ctx context.Context) (*ExportResult, error)

	// Import replaces the persisted document with the payload and reloads the board.
	// Structurally invalid payloads leave state untouched.
	Import(ctx context.Context, payload []byte) (*ImportResult, error)
}

// ExportResult contains a rendered export file.
type ExportResult struct {
	FileName string
	Content  []byte
	Document *models.ExportDocument
}

// ImportResult summarizes an applied import.
type ImportResult struct {
	GridCount     int
	CurrentGridID string
}

// ActivityService defines the primary port for reading the audit trail.
type ActivityService interface {
	// ListActivity returns recent activity, newest first.
	ListActivity(ctx context.Context, filters ActivityFilters) ([]*Activity, error)
}

// ActivityFilters contains filter options for activity queries.
type ActivityFilters struct {
	EntityID string
	Limit    int
}

// Activity represents one audited change at the port boundary.
type Activity struct {
	ID         string
	ActorID    string
	EntityType string
	EntityID   string
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
