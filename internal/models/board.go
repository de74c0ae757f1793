// Package models contains domain types for gridboard entities.
// Persistence lives behind the ports in internal/ports/secondary.
package models

// StateVersion is the migration marker written alongside persisted AppData.
const StateVersion = 1

// DefaultGridTitle is used when a grid is created without a title.
const DefaultGridTitle = "New Grid"

// StarterGridTitle is the title of the grid created on first run.
const StarterGridTitle = "My Task Board"

// Item is a single card within a List.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// List is an ordered column of items within a Grid.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items []Item `json:"items"`
	Order int    `json:"order"`
}

// Grid is a board. It owns its lists exclusively.
type Grid struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Lists []List `json:"lists"`
}

// AppData is the persisted root document.
// CurrentGridID is nil iff Grids is empty; otherwise it names an existing grid.
type AppData struct {
	Grids         []Grid  `json:"grids"`
	CurrentGridID *string `json:"currentGridId"`
}

// ListUpdate carries optional list fields. Nil fields are left untouched.
type ListUpdate struct {
	Title *string
}

// IsEmpty reports whether the update changes nothing.
func (u ListUpdate) IsEmpty() bool {
	return u.Title == nil
}

// MoveItemRequest describes moving an item between lists of the current grid.
// Position is clamped to the target list bounds; a negative value appends.
type MoveItemRequest struct {
	FromListID string
	ToListID   string
	ItemID     string
	Position   int
}

// NewAppData returns an empty AppData with no current grid.
func NewAppData() *AppData {
	return &AppData{Grids: []Grid{}}
}

// CurrentID returns the current grid id or "" when none is selected.
func (d *AppData) CurrentID() string {
	if d == nil || d.CurrentGridID == nil {
		return ""
	}
	return *d.CurrentGridID
}

// SetCurrent sets the current grid id. An empty id clears the selection.
func (d *AppData) SetCurrent(id string) {
	if id == "" {
		d.CurrentGridID = nil
		return
	}
	d.CurrentGridID = &id
}

// GridIndex returns the index of the grid with the given id, or -1.
func (d *AppData) GridIndex(id string) int {
	for i := range d.Grids {
		if d.Grids[i].ID == id {
			return i
		}
	}
	return -1
}

// Current returns the current grid, or nil when none is selected or it is missing.
func (d *AppData) Current() *Grid {
	if d == nil {
		return nil
	}
	idx := d.GridIndex(d.CurrentID())
	if idx < 0 {
		return nil
	}
	return &d.Grids[idx]
}

// ListIndex returns the index of the list with the given id, or -1.
func (g *Grid) ListIndex(id string) int {
	for i := range g.Lists {
		if g.Lists[i].ID == id {
			return i
		}
	}
	return -1
}

// ItemIndex returns the index of the item with the given id, or -1.
func (l *List) ItemIndex(id string) int {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy. Callers may mutate the copy freely.
func (d *AppData) Clone() *AppData {
	if d == nil {
		return nil
	}
	out := &AppData{Grids: make([]Grid, len(d.Grids))}
	for i := range d.Grids {
		out.Grids[i] = d.Grids[i].Clone()
	}
	if d.CurrentGridID != nil {
		out.SetCurrent(*d.CurrentGridID)
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := Grid{ID: g.ID, Title: g.Title, Lists: make([]List, len(g.Lists))}
	for i := range g.Lists {
		out.Lists[i] = g.Lists[i].Clone()
	}
	return out
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	out := List{ID: l.ID, Title: l.Title, Order: l.Order, Items: make([]Item, len(l.Items))}
	copy(out.Items, l.Items)
	return out
}
