package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/gridboard/internal/core/board"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

// exportDateLayout matches an ISO-8601 UTC timestamp with millisecond precision.
const exportDateLayout = "2006-01-02T15:04:05.000Z07:00"

// TransferServiceImpl implements the TransferService interface.
type TransferServiceImpl struct {
	board  primary.BoardService
	store  secondary.StateStore
	key    string
	clock  secondary.Clock
	logger *zap.Logger
}

// NewTransferService creates a new TransferService with injected dependencies.
func NewTransferService(boardService primary.BoardService, store secondary.StateStore, key string, clock secondary.Clock, logger *zap.Logger) *TransferServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferServiceImpl{
		board:  boardService,
		store:  store,
		key:    key,
		clock:  clock,
		logger: logger,
	}
}

// Export renders the board document as an export file.
func (s *TransferServiceImpl) Export(ctx context.Context) (*primary.ExportResult, error) {
	data := s.board.Snapshot(ctx)
	now := s.clock.Now()

	doc := &models.ExportDocument{
		Grids:         data.Grids,
		CurrentGridID: data.CurrentGridID,
		ExportDate:    now.UTC().Format(exportDateLayout),
	}
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}

	return &primary.ExportResult{
		FileName: models.ExportFileName(now),
		Content:  content,
		Document: doc,
	}, nil
}

// Import replaces the persisted document with the payload and reloads the board.
func (s *TransferServiceImpl) Import(ctx context.Context, payload []byte) (*primary.ImportResult, error) {
	grids, current, guardCtx := parseImport(payload)
	if err := board.CanImport(guardCtx).Error(); err != nil {
		s.logger.Info("import rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	data := board.NormalizeImport(grids, current)
	if err := s.store.Save(ctx, s.key, data); err != nil {
		return nil, fmt.Errorf("%w: failed to save import: %v", ErrPersistence, err)
	}
	if err := s.board.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to reload after import: %w", err)
	}

	s.logger.Info("import applied", zap.Int("grids", len(data.Grids)))
	return &primary.ImportResult{
		GridCount:     len(data.Grids),
		CurrentGridID: data.CurrentID(),
	}, nil
}

// parseImport decodes just enough of the payload to evaluate the import guard.
func parseImport(payload []byte) ([]models.Grid, *string, board.ImportContext) {
	var guardCtx board.ImportContext

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		guardCtx.UnreadableErr = err
		return nil, nil, guardCtx
	}

	gridsRaw, ok := raw["grids"]
	guardCtx.HasGrids = ok && !bytes.Equal(bytes.TrimSpace(gridsRaw), []byte("null"))
	if !guardCtx.HasGrids {
		return nil, nil, guardCtx
	}
	trimmed := bytes.TrimSpace(gridsRaw)
	guardCtx.GridsIsArray = len(trimmed) > 0 && trimmed[0] == '['
	if !guardCtx.GridsIsArray {
		return nil, nil, guardCtx
	}

	var grids []models.Grid
	if err := json.Unmarshal(gridsRaw, &grids); err != nil {
		guardCtx.UnreadableErr = err
		return nil, nil, guardCtx
	}
	guardCtx.MissingID = board.HasMissingID(grids)
	guardCtx.DuplicateID = board.FirstDuplicateID(grids)

	// A missing or non-string currentGridId is treated as no selection.
	var current *string
	if c, ok := raw["currentGridId"]; ok {
		var id string
		if err := json.Unmarshal(c, &id); err == nil && id != "" {
			current = &id
		}
	}
	return grids, current, guardCtx
}

// SystemClock implements secondary.Clock with time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Ensure TransferServiceImpl implements the interface.
var _ primary.TransferService = (*TransferServiceImpl)(nil)
