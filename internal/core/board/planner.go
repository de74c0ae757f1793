package board

import (
	"strconv"

	"github.com/example/gridboard/internal/core/effects"
	"github.com/example/gridboard/internal/models"
)

// Plan is the outcome of a board transition.
// When Changed is false, Next is nil and Effects carries either a debug log
// explaining why the operation was absorbed or a NoEffect when the target
// state already held.
type Plan struct {
	Next     *models.AppData
	Changed  bool
	EntityID string // id of the created entity, if any
	Effects  []effects.Effect
}

// noop builds the plan for an operation whose guard did not pass.
func noop(op string, r GuardResult) Plan {
	return Plan{
		Effects: []effects.Effect{effects.LogEffect{
			Level:   "debug",
			Message: "board operation skipped",
			Fields:  map[string]any{"op": op, "reason": r.Reason},
		}},
	}
}

// satisfied builds the plan for an operation whose target state already holds.
func satisfied() Plan {
	return Plan{Effects: []effects.Effect{effects.NoEffect{}}}
}

// changed builds the plan for an applied transition.
// The persist effect always comes first so audit rows are only written for saved state.
func changed(next *models.AppData, entityID string, audits ...effects.AuditEffect) Plan {
	effs := make([]effects.Effect, 0, len(audits)+1)
	effs = append(effs, effects.PersistEffect{Data: next})
	for _, a := range audits {
		effs = append(effs, a)
	}
	return Plan{Next: next, Changed: true, EntityID: entityID, Effects: effs}
}

func gridContext(data *models.AppData) GridContext {
	return GridContext{
		CurrentGridID:     data.CurrentID(),
		CurrentGridExists: data.Current() != nil,
	}
}

func listContext(data *models.AppData, listID string) ListContext {
	ctx := ListContext{GridContext: gridContext(data), ListID: listID}
	if g := data.Current(); g != nil {
		ctx.ListExists = g.ListIndex(listID) >= 0
	}
	return ctx
}

func itemContext(data *models.AppData, listID, itemID string) ItemContext {
	ctx := ItemContext{ListContext: listContext(data, listID), ItemID: itemID}
	if g := data.Current(); g != nil {
		if li := g.ListIndex(listID); li >= 0 {
			ctx.ItemExists = g.Lists[li].ItemIndex(itemID) >= 0
		}
	}
	return ctx
}

// PlanCreateGrid appends a new empty grid and makes it current.
func PlanCreateGrid(data *models.AppData, id, title string) Plan {
	if title == "" {
		title = models.DefaultGridTitle
	}
	next := data.Clone()
	next.Grids = append(next.Grids, models.Grid{ID: id, Title: title, Lists: []models.List{}})
	next.SetCurrent(id)
	return changed(next, id, effects.AuditEffect{
		Action:     effects.ActionCreate,
		EntityType: effects.EntityGrid,
		EntityID:   id,
	})
}

// PlanEnsureDefaultGrid creates the starter grid when no grids exist.
func PlanEnsureDefaultGrid(data *models.AppData, id string) Plan {
	if len(data.Grids) > 0 {
		return satisfied()
	}
	return PlanCreateGrid(data, id, models.StarterGridTitle)
}

// PlanDeleteGrid removes a grid with all its lists and items.
// If the grid was current, the first remaining grid becomes current (or none).
func PlanDeleteGrid(data *models.AppData, gridID string) Plan {
	idx := data.GridIndex(gridID)
	if r := CanTargetGrid(GridTargetContext{GridID: gridID, GridExists: idx >= 0}); !r.Allowed {
		return noop("delete_grid", r)
	}
	next := data.Clone()
	next.Grids = append(next.Grids[:idx], next.Grids[idx+1:]...)
	if next.CurrentID() == gridID {
		if len(next.Grids) > 0 {
			next.SetCurrent(next.Grids[0].ID)
		} else {
			next.SetCurrent("")
		}
	}
	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionDelete,
		EntityType: effects.EntityGrid,
		EntityID:   gridID,
	})
}

// PlanSelectGrid makes an existing grid current.
func PlanSelectGrid(data *models.AppData, gridID string) Plan {
	if r := CanTargetGrid(GridTargetContext{GridID: gridID, GridExists: data.GridIndex(gridID) >= 0}); !r.Allowed {
		return noop("select_grid", r)
	}
	if data.CurrentID() == gridID {
		return satisfied()
	}
	next := data.Clone()
	next.SetCurrent(gridID)
	return changed(next, "")
}

// PlanUpdateGridTitle renames the current grid.
func PlanUpdateGridTitle(data *models.AppData, title string) Plan {
	if r := CanMutateCurrentGrid(gridContext(data)); !r.Allowed {
		return noop("update_grid_title", r)
	}
	next := data.Clone()
	g := next.Current()
	old := g.Title
	g.Title = title
	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionUpdate,
		EntityType: effects.EntityGrid,
		EntityID:   g.ID,
		FieldName:  "title",
		OldValue:   old,
		NewValue:   title,
	})
}

// PlanCreateList appends a new empty list to the current grid.
func PlanCreateList(data *models.AppData, id, title string) Plan {
	if r := CanMutateCurrentGrid(gridContext(data)); !r.Allowed {
		return noop("create_list", r)
	}
	next := data.Clone()
	g := next.Current()
	g.Lists = append(g.Lists, models.List{ID: id, Title: title, Items: []models.Item{}, Order: len(g.Lists)})
	return changed(next, id, effects.AuditEffect{
		Action:     effects.ActionCreate,
		EntityType: effects.EntityList,
		EntityID:   id,
	})
}

// PlanUpdateList merges the set fields of upd into a list of the current grid.
func PlanUpdateList(data *models.AppData, listID string, upd models.ListUpdate) Plan {
	if r := CanMutateList(listContext(data, listID)); !r.Allowed {
		return noop("update_list", r)
	}
	if upd.IsEmpty() {
		return satisfied()
	}
	next := data.Clone()
	g := next.Current()
	l := &g.Lists[g.ListIndex(listID)]
	var audits []effects.AuditEffect
	if upd.Title != nil {
		audits = append(audits, effects.AuditEffect{
			Action:     effects.ActionUpdate,
			EntityType: effects.EntityList,
			EntityID:   listID,
			FieldName:  "title",
			OldValue:   l.Title,
			NewValue:   *upd.Title,
		})
		l.Title = *upd.Title
	}
	return changed(next, "", audits...)
}

// PlanDeleteList removes a list and its items, then restamps the remaining lists.
func PlanDeleteList(data *models.AppData, listID string) Plan {
	if r := CanMutateList(listContext(data, listID)); !r.Allowed {
		return noop("delete_list", r)
	}
	next := data.Clone()
	g := next.Current()
	idx := g.ListIndex(listID)
	g.Lists = append(g.Lists[:idx], g.Lists[idx+1:]...)
	RestampLists(g.Lists)
	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionDelete,
		EntityType: effects.EntityList,
		EntityID:   listID,
	})
}

// PlanAddItem appends a new item to a list of the current grid.
func PlanAddItem(data *models.AppData, listID, id, title string) Plan {
	if r := CanMutateList(listContext(data, listID)); !r.Allowed {
		return noop("add_item", r)
	}
	next := data.Clone()
	g := next.Current()
	l := &g.Lists[g.ListIndex(listID)]
	l.Items = append(l.Items, models.Item{ID: id, Title: title, Order: len(l.Items)})
	return changed(next, id, effects.AuditEffect{
		Action:     effects.ActionCreate,
		EntityType: effects.EntityItem,
		EntityID:   id,
	})
}

// PlanUpdateItem replaces the title of the item matching item.ID.
// Order stays under store control.
func PlanUpdateItem(data *models.AppData, listID string, item models.Item) Plan {
	if r := CanMutateItem(itemContext(data, listID, item.ID)); !r.Allowed {
		return noop("update_item", r)
	}
	next := data.Clone()
	g := next.Current()
	l := &g.Lists[g.ListIndex(listID)]
	it := &l.Items[l.ItemIndex(item.ID)]
	if it.Title == item.Title {
		return satisfied()
	}
	old := it.Title
	it.Title = item.Title
	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionUpdate,
		EntityType: effects.EntityItem,
		EntityID:   item.ID,
		FieldName:  "title",
		OldValue:   old,
		NewValue:   item.Title,
	})
}

// PlanDeleteItem removes an item and restamps its former siblings.
func PlanDeleteItem(data *models.AppData, listID, itemID string) Plan {
	if r := CanMutateItem(itemContext(data, listID, itemID)); !r.Allowed {
		return noop("delete_item", r)
	}
	next := data.Clone()
	g := next.Current()
	l := &g.Lists[g.ListIndex(listID)]
	idx := l.ItemIndex(itemID)
	l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
	RestampItems(l.Items)
	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionDelete,
		EntityType: effects.EntityItem,
		EntityID:   itemID,
	})
}

// PlanReorderLists re-derives list order from the given id sequence.
// Lists of the current grid missing from ids are dropped.
func PlanReorderLists(data *models.AppData, ids []string) Plan {
	if r := CanMutateCurrentGrid(gridContext(data)); !r.Allowed {
		return noop("reorder_lists", r)
	}
	next := data.Clone()
	g := next.Current()
	before := len(g.Lists)
	g.Lists = ReorderLists(g.Lists, ids)
	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionUpdate,
		EntityType: effects.EntityGrid,
		EntityID:   g.ID,
		FieldName:  "lists",
		OldValue:   strconv.Itoa(before),
		NewValue:   strconv.Itoa(len(g.Lists)),
	})
}

// PlanReorderItems re-derives item order within one list from the given id sequence.
// Items missing from ids are dropped.
func PlanReorderItems(data *models.AppData, listID string, ids []string) Plan {
	if r := CanMutateList(listContext(data, listID)); !r.Allowed {
		return noop("reorder_items", r)
	}
	next := data.Clone()
	g := next.Current()
	l := &g.Lists[g.ListIndex(listID)]
	before := len(l.Items)
	l.Items = ReorderItems(l.Items, ids)
	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionUpdate,
		EntityType: effects.EntityList,
		EntityID:   listID,
		FieldName:  "items",
		OldValue:   strconv.Itoa(before),
		NewValue:   strconv.Itoa(len(l.Items)),
	})
}

// PlanMoveItem removes an item from one list and inserts it into another
// at req.Position, restamping both lists in the same transition.
// A same-list move behaves as a reorder of that list.
func PlanMoveItem(data *models.AppData, req models.MoveItemRequest) Plan {
	ctx := MoveItemContext{
		GridContext: gridContext(data),
		FromListID:  req.FromListID,
		ToListID:    req.ToListID,
		ItemID:      req.ItemID,
	}
	if g := data.Current(); g != nil {
		if fi := g.ListIndex(req.FromListID); fi >= 0 {
			ctx.FromListExists = true
			ctx.ItemExists = g.Lists[fi].ItemIndex(req.ItemID) >= 0
		}
		ctx.ToListExists = g.ListIndex(req.ToListID) >= 0
	}
	if r := CanMoveItem(ctx); !r.Allowed {
		return noop("move_item", r)
	}

	next := data.Clone()
	g := next.Current()
	from := &g.Lists[g.ListIndex(req.FromListID)]
	idx := from.ItemIndex(req.ItemID)
	moved := from.Items[idx]
	from.Items = append(from.Items[:idx], from.Items[idx+1:]...)
	RestampItems(from.Items)

	to := &g.Lists[g.ListIndex(req.ToListID)]
	pos := req.Position
	if pos < 0 || pos > len(to.Items) {
		pos = len(to.Items)
	}
	to.Items = append(to.Items, models.Item{})
	copy(to.Items[pos+1:], to.Items[pos:])
	to.Items[pos] = moved
	RestampItems(to.Items)

	return changed(next, "", effects.AuditEffect{
		Action:     effects.ActionUpdate,
		EntityType: effects.EntityItem,
		EntityID:   req.ItemID,
		FieldName:  "list",
		OldValue:   req.FromListID,
		NewValue:   req.ToListID,
	})
}

// NormalizeImport builds AppData from imported grids.
// Lists and items are sorted by their recorded order and restamped; a current
// grid id that names no imported grid falls back to the first grid.
func NormalizeImport(grids []models.Grid, currentGridID *string) *models.AppData {
	data := &models.AppData{Grids: make([]models.Grid, len(grids))}
	for i, g := range grids {
		g = g.Clone()
		SortListsByOrder(g.Lists)
		RestampLists(g.Lists)
		for j := range g.Lists {
			SortItemsByOrder(g.Lists[j].Items)
			RestampItems(g.Lists[j].Items)
		}
		data.Grids[i] = g
	}
	if currentGridID != nil && data.GridIndex(*currentGridID) >= 0 {
		data.SetCurrent(*currentGridID)
	} else if len(data.Grids) > 0 {
		data.SetCurrent(data.Grids[0].ID)
	}
	return data
}
