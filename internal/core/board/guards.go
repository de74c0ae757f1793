// Package board contains the pure business logic for grid, list and item operations.
// Guards are pure functions that evaluate preconditions without side effects.
package board

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// GridContext provides context for guards scoped to the current grid.
type GridContext struct {
	CurrentGridID     string // empty if none selected
	CurrentGridExists bool
}

// ListContext provides context for guards scoped to one list of the current grid.
type ListContext struct {
	GridContext
	ListID     string
	ListExists bool
}

// ItemContext provides context for guards scoped to one item.
type ItemContext struct {
	ListContext
	ItemID     string
	ItemExists bool
}

// MoveItemContext provides context for cross-list move guards.
type MoveItemContext struct {
	GridContext
	FromListID     string
	FromListExists bool
	ToListID       string
	ToListExists   bool
	ItemID         string
	ItemExists     bool // in the source list
}

// GridTargetContext provides context for guards that name a grid explicitly.
type GridTargetContext struct {
	GridID     string
	GridExists bool
}

// ImportContext provides context for import guards.
type ImportContext struct {
	HasGrids      bool
	GridsIsArray  bool
	DuplicateID   string // first id seen twice, empty if none
	MissingID     bool   // some grid, list or item has an empty id
	UnreadableErr error  // payload failed to parse as JSON
}

// CanMutateCurrentGrid evaluates whether an operation on the current grid can run.
// Rules:
// - A current grid must be selected
// - The selected grid must exist
func CanMutateCurrentGrid(ctx GridContext) GuardResult {
	if ctx.CurrentGridID == "" {
		return GuardResult{Allowed: false, Reason: "no current grid selected"}
	}
	if !ctx.CurrentGridExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("current grid %s not found", ctx.CurrentGridID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanMutateList evaluates whether a list of the current grid can be changed.
// Rules:
// - Current grid rules apply
// - List must exist in the current grid
func CanMutateList(ctx ListContext) GuardResult {
	if r := CanMutateCurrentGrid(ctx.GridContext); !r.Allowed {
		return r
	}
	if !ctx.ListExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("list %s not found in grid %s", ctx.ListID, ctx.CurrentGridID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanMutateItem evaluates whether an item can be changed.
// Rules:
// - List rules apply
// - Item must exist in that list
func CanMutateItem(ctx ItemContext) GuardResult {
	if r := CanMutateList(ctx.ListContext); !r.Allowed {
		return r
	}
	if !ctx.ItemExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %s not found in list %s", ctx.ItemID, ctx.ListID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanMoveItem evaluates whether an item can move between lists.
// Rules:
// - Current grid rules apply
// - Both lists must exist in the current grid
// - Item must exist in the source list
func CanMoveItem(ctx MoveItemContext) GuardResult {
	if r := CanMutateCurrentGrid(ctx.GridContext); !r.Allowed {
		return r
	}
	if !ctx.FromListExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("source list %s not found", ctx.FromListID)}
	}
	if !ctx.ToListExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("target list %s not found", ctx.ToListID)}
	}
	if !ctx.ItemExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %s not found in list %s", ctx.ItemID, ctx.FromListID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanTargetGrid evaluates whether a grid named by id can be deleted or selected.
// Rules:
// - Grid must exist
func CanTargetGrid(ctx GridTargetContext) GuardResult {
	if !ctx.GridExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("grid %s not found", ctx.GridID)}
	}
	return GuardResult{Allowed: true}
}

// CanImport evaluates whether an import payload is structurally valid.
// Rules:
// - Payload must be JSON
// - A grids field must be present and be an array
// - Every grid, list and item must carry an id
// - Ids must be unique across the imported tree
func CanImport(ctx ImportContext) GuardResult {
	if ctx.UnreadableErr != nil {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("payload is not valid JSON: %v", ctx.UnreadableErr)}
	}
	if !ctx.HasGrids {
		return GuardResult{Allowed: false, Reason: "payload has no grids field"}
	}
	if !ctx.GridsIsArray {
		return GuardResult{Allowed: false, Reason: "grids must be an array"}
	}
	if ctx.MissingID {
		return GuardResult{Allowed: false, Reason: "every grid, list and item needs a non-empty id"}
	}
	if ctx.DuplicateID != "" {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("id %s appears more than once", ctx.DuplicateID)}
	}
	return GuardResult{Allowed: true}
}
