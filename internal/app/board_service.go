package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/example/gridboard/internal/core/board"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

// maxIDAttempts bounds retries when a generated id is already in use.
const maxIDAttempts = 8

// BoardServiceImpl implements the BoardService interface.
// It is the single writer of the board document: every operation runs under
// mu, and the new state is committed only after the persist effect succeeded.
type BoardServiceImpl struct {
	mu       sync.Mutex
	data     *models.AppData
	store    secondary.StateStore
	key      string
	ids      secondary.IDGenerator
	executor EffectExecutor
	logger   *zap.Logger
}

// NewBoardService creates a BoardService and loads the current document from store.
func NewBoardService(ctx context.Context, store secondary.StateStore, key string, ids secondary.IDGenerator, executor EffectExecutor, logger *zap.Logger) (*BoardServiceImpl, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &BoardServiceImpl{
		store:    store,
		key:      key,
		ids:      ids,
		executor: executor,
		logger:   logger,
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces in-memory state with the persisted document.
// Documents that break the board invariants are normalized before use.
func (s *BoardServiceImpl) Reload(ctx context.Context) error {
	data, err := s.store.Load(ctx, s.key, models.NewAppData())
	if err != nil {
		return fmt.Errorf("%w: failed to load state: %v", ErrPersistence, err)
	}
	if err := board.CheckInvariants(data); err != nil {
		s.logger.Warn("normalizing persisted board state", zap.Error(err))
		data = board.NormalizeImport(data.Grids, data.CurrentGridID)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	s.logger.Debug("board state loaded", zap.Int("grids", len(data.Grids)), zap.String("current", data.CurrentID()))
	return nil
}

// Snapshot returns a deep copy of the whole board document.
func (s *BoardServiceImpl) Snapshot(ctx context.Context) *models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// CurrentGrid returns a copy of the current grid, or nil.
func (s *BoardServiceImpl) CurrentGrid(ctx context.Context) *models.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.data.Current()
	if g == nil {
		return nil
	}
	out := g.Clone()
	return &out
}

// CreateGrid appends a grid and selects it.
func (s *BoardServiceImpl) CreateGrid(ctx context.Context, title string) (string, error) {
	plan, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanCreateGrid(data, s.newID(data), title)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create grid: %w", err)
	}
	return plan.EntityID, nil
}

// EnsureDefaultGrid creates the starter grid when there are no grids.
func (s *BoardServiceImpl) EnsureDefaultGrid(ctx context.Context) (string, error) {
	plan, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		var id string
		if len(data.Grids) == 0 {
			id = s.newID(data)
		}
		return board.PlanEnsureDefaultGrid(data, id)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create default grid: %w", err)
	}
	return plan.EntityID, nil
}

// DeleteGrid removes a grid with all its lists and items.
func (s *BoardServiceImpl) DeleteGrid(ctx context.Context, gridID string) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanDeleteGrid(data, gridID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete grid: %w", err)
	}
	return nil
}

// SelectGrid makes a grid current.
func (s *BoardServiceImpl) SelectGrid(ctx context.Context, gridID string) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanSelectGrid(data, gridID)
	})
	if err != nil {
		return fmt.Errorf("failed to select grid: %w", err)
	}
	return nil
}

// UpdateGridTitle renames the current grid.
func (s *BoardServiceImpl) UpdateGridTitle(ctx context.Context, title string) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanUpdateGridTitle(data, title)
	})
	if err != nil {
		return fmt.Errorf("failed to rename grid: %w", err)
	}
	return nil
}

// CreateList appends a list to the current grid.
func (s *BoardServiceImpl) CreateList(ctx context.Context, title string) (string, error) {
	plan, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanCreateList(data, s.newID(data), title)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create list: %w", err)
	}
	return plan.EntityID, nil
}

// UpdateList merges the set fields into a list of the current grid.
func (s *BoardServiceImpl) UpdateList(ctx context.Context, listID string, upd models.ListUpdate) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanUpdateList(data, listID, upd)
	})
	if err != nil {
		return fmt.Errorf("failed to update list: %w", err)
	}
	return nil
}

// DeleteList removes a list and its items from the current grid.
func (s *BoardServiceImpl) DeleteList(ctx context.Context, listID string) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanDeleteList(data, listID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

// AddItem appends an item to a list of the current grid.
func (s *BoardServiceImpl) AddItem(ctx context.Context, listID, title string) (string, error) {
	plan, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanAddItem(data, listID, s.newID(data), title)
	})
	if err != nil {
		return "", fmt.Errorf("failed to add item: %w", err)
	}
	return plan.EntityID, nil
}

// UpdateItem replaces the item matching item.ID within the list.
func (s *BoardServiceImpl) UpdateItem(ctx context.Context, listID string, item models.Item) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanUpdateItem(data, listID, item)
	})
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// DeleteItem removes an item from a list.
func (s *BoardServiceImpl) DeleteItem(ctx context.Context, listID, itemID string) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanDeleteItem(data, listID, itemID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ReorderLists restamps list order from the full id sequence.
func (s *BoardServiceImpl) ReorderLists(ctx context.Context, listIDs []string) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanReorderLists(data, listIDs)
	})
	if err != nil {
		return fmt.Errorf("failed to reorder lists: %w", err)
	}
	return nil
}

// ReorderItems restamps item order within a list from the full id sequence.
func (s *BoardServiceImpl) ReorderItems(ctx context.Context, listID string, itemIDs []string) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanReorderItems(data, listID, itemIDs)
	})
	if err != nil {
		return fmt.Errorf("failed to reorder items: %w", err)
	}
	return nil
}

// MoveItem moves an item between lists of the current grid in one step.
func (s *BoardServiceImpl) MoveItem(ctx context.Context, req models.MoveItemRequest) error {
	_, err := s.apply(ctx, func(data *models.AppData) board.Plan {
		return board.PlanMoveItem(data, req)
	})
	if err != nil {
		return fmt.Errorf("failed to move item: %w", err)
	}
	return nil
}

// Helper methods

// apply plans a transition against the current state, executes its effects
// and commits the new state. On error nothing is committed.
func (s *BoardServiceImpl) apply(ctx context.Context, planFn func(*models.AppData) board.Plan) (board.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan := planFn(s.data)
	if err := s.executor.Execute(ctx, plan.Effects); err != nil {
		return board.Plan{}, err
	}
	if plan.Changed {
		s.data = plan.Next
	}
	return plan, nil
}

// newID returns an id not yet used in data. Called with mu held.
func (s *BoardServiceImpl) newID(data *models.AppData) string {
	id := s.ids.NewID()
	for i := 1; i < maxIDAttempts && board.ContainsID(data, id); i++ {
		id = s.ids.NewID()
	}
	return id
}

// Ensure BoardServiceImpl implements the interface.
var _ primary.BoardService = (*BoardServiceImpl)(nil)
