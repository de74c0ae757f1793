package app

import "errors"

var (
	// ErrPersistence is returned when the board document could not be saved or loaded.
	// The in-memory state is unchanged when a mutation returns it.
	ErrPersistence = errors.New("board state could not be persisted")

	// ErrInvalidImport is returned for structurally invalid import payloads.
	ErrInvalidImport = errors.New("invalid import file")
)
