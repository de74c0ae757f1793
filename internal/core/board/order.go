package board

import (
	"fmt"
	"sort"

	"github.com/example/gridboard/internal/models"
)

// RestampLists sets each list's order to its slice index.
func RestampLists(lists []models.List) {
	for i := range lists {
		lists[i].Order = i
	}
}

// RestampItems sets each item's order to its slice index.
func RestampItems(items []models.Item) {
	for i := range items {
		items[i].Order = i
	}
}

// SortListsByOrder sorts lists by order, keeping slice position for ties.
func SortListsByOrder(lists []models.List) {
	sort.SliceStable(lists, func(i, j int) bool { return lists[i].Order < lists[j].Order })
}

// SortItemsByOrder sorts items by order, keeping slice position for ties.
func SortItemsByOrder(items []models.Item) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
}

// reorderByIDs returns the elements of xs in the sequence given by ids.
// Unknown ids are skipped, repeated ids keep their first position,
// and elements whose id is absent from ids are dropped.
func reorderByIDs[T any](xs []T, ids []string, idOf func(T) string) []T {
	byID := make(map[string]T, len(xs))
	for _, x := range xs {
		byID[idOf(x)] = x
	}
	out := make([]T, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		x, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, x)
	}
	return out
}

// ReorderLists returns lists in the given id sequence with order restamped.
func ReorderLists(lists []models.List, ids []string) []models.List {
	out := reorderByIDs(lists, ids, func(l models.List) string { return l.ID })
	RestampLists(out)
	return out
}

// ReorderItems returns items in the given id sequence with order restamped.
func ReorderItems(items []models.Item, ids []string) []models.Item {
	out := reorderByIDs(items, ids, func(it models.Item) string { return it.ID })
	RestampItems(out)
	return out
}

// CheckInvariants verifies the structural rules of an AppData document:
// contiguous orders matching slice position, unique non-empty ids, and a
// current grid reference that is nil iff there are no grids.
func CheckInvariants(data *models.AppData) error {
	if data == nil {
		return fmt.Errorf("app data is nil")
	}
	if HasMissingID(data.Grids) {
		return fmt.Errorf("entity with empty id")
	}
	if dup := FirstDuplicateID(data.Grids); dup != "" {
		return fmt.Errorf("duplicate id %s", dup)
	}
	current := data.CurrentID()
	if len(data.Grids) == 0 {
		if current != "" {
			return fmt.Errorf("current grid %s set with no grids", current)
		}
	} else if data.CurrentGridID == nil {
		return fmt.Errorf("no current grid selected with %d grids", len(data.Grids))
	} else if data.GridIndex(current) < 0 {
		return fmt.Errorf("current grid %q does not reference an existing grid", current)
	}
	for _, g := range data.Grids {
		for i, l := range g.Lists {
			if l.Order != i {
				return fmt.Errorf("grid %s: list %s has order %d at position %d", g.ID, l.ID, l.Order, i)
			}
			for j, it := range l.Items {
				if it.Order != j {
					return fmt.Errorf("list %s: item %s has order %d at position %d", l.ID, it.ID, it.Order, j)
				}
			}
		}
	}
	return nil
}

// FirstDuplicateID returns the first id used by more than one entity, or "".
func FirstDuplicateID(grids []models.Grid) string {
	seen := make(map[string]bool)
	check := func(id string) bool {
		if seen[id] {
			return true
		}
		seen[id] = true
		return false
	}
	for _, g := range grids {
		if check(g.ID) {
			return g.ID
		}
		for _, l := range g.Lists {
			if check(l.ID) {
				return l.ID
			}
			for _, it := range l.Items {
				if check(it.ID) {
					return it.ID
				}
			}
		}
	}
	return ""
}

// HasMissingID reports whether any grid, list or item has an empty id.
func HasMissingID(grids []models.Grid) bool {
	for _, g := range grids {
		if g.ID == "" {
			return true
		}
		for _, l := range g.Lists {
			if l.ID == "" {
				return true
			}
			for _, it := range l.Items {
				if it.ID == "" {
					return true
				}
			}
		}
	}
	return false
}

// ContainsID reports whether id is used anywhere in the tree.
func ContainsID(data *models.AppData, id string) bool {
	for _, g := range data.Grids {
		if g.ID == id {
			return true
		}
		for _, l := range g.Lists {
			if l.ID == id {
				return true
			}
			for _, it := range l.Items {
				if it.ID == id {
					return true
				}
			}
		}
	}
	return false
}
