package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
)

// BoardAdapter is a thin adapter that translates CLI operations to BoardService calls.
// The service absorbs operations on missing targets as no-ops; the adapter checks
// targets first so the user gets an error instead of silence.
type BoardAdapter struct {
	service primary.BoardService
	out     io.Writer
}

// NewBoardAdapter creates a new BoardAdapter with the given service.
func NewBoardAdapter(service primary.BoardService, out io.Writer) *BoardAdapter {
	return &BoardAdapter{
		service: service,
		out:     out,
	}
}

// ListGrids prints all grids, marking the current one.
func (a *BoardAdapter) ListGrids(ctx context.Context) (*models.AppData, error) {
	data := a.service.Snapshot(ctx)

	if len(data.Grids) == 0 {
		fmt.Fprintln(a.out, "No grids found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Create your first grid:")
		fmt.Fprintln(a.out, `  gridboard grid create "My Board"`)
		return data, nil
	}

	current := data.CurrentID()
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, " \tID\tTITLE\tLISTS\tITEMS")
	fmt.Fprintln(w, " \t--\t-----\t-----\t-----")

	for _, g := range data.Grids {
		marker := " "
		if g.ID == current {
			marker = "*"
		}
		items := 0
		for _, l := range g.Lists {
			items += len(l.Items)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", marker, g.ID, g.Title, len(g.Lists), items)
	}

	w.Flush()
	return data, nil
}

// ShowGrid renders the current grid as columns.
func (a *BoardAdapter) ShowGrid(ctx context.Context) (*models.Grid, error) {
	grid := a.service.CurrentGrid(ctx)
	if grid == nil {
		return nil, errNoCurrentGrid
	}
	fmt.Fprintln(a.out, renderGrid(grid))
	return grid, nil
}

// CreateGrid creates a grid and makes it current.
func (a *BoardAdapter) CreateGrid(ctx context.Context, title string) (string, error) {
	id, err := a.service.CreateGrid(ctx, title)
	if err != nil {
		return "", err
	}
	if title == "" {
		title = models.DefaultGridTitle
	}
	fmt.Fprintf(a.out, "%s Created grid %s: %s\n", ok(), id, title)
	return id, nil
}

// SelectGrid makes a grid current.
func (a *BoardAdapter) SelectGrid(ctx context.Context, gridID string) error {
	data := a.service.Snapshot(ctx)
	i := data.GridIndex(gridID)
	if i < 0 {
		return fmt.Errorf("grid %s not found", gridID)
	}
	if err := a.service.SelectGrid(ctx, gridID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Switched to grid %s: %s\n", ok(), gridID, data.Grids[i].Title)
	return nil
}

// RenameGrid renames the current grid.
func (a *BoardAdapter) RenameGrid(ctx context.Context, title string) error {
	grid := a.service.CurrentGrid(ctx)
	if grid == nil {
		return errNoCurrentGrid
	}
	if err := a.service.UpdateGridTitle(ctx, title); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Grid %s renamed\n", ok(), grid.ID)
	fmt.Fprintf(a.out, "  %s → %s\n", grid.Title, title)
	return nil
}

// DeleteGrid deletes a grid with everything in it.
func (a *BoardAdapter) DeleteGrid(ctx context.Context, gridID string) error {
	data := a.service.Snapshot(ctx)
	i := data.GridIndex(gridID)
	if i < 0 {
		return fmt.Errorf("grid %s not found", gridID)
	}
	if err := a.service.DeleteGrid(ctx, gridID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Deleted grid %s: %s\n", ok(), gridID, data.Grids[i].Title)
	return nil
}

// CreateList appends a list to the current grid.
func (a *BoardAdapter) CreateList(ctx context.Context, title string) (string, error) {
	if a.service.CurrentGrid(ctx) == nil {
		return "", errNoCurrentGrid
	}
	id, err := a.service.CreateList(ctx, title)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(a.out, "%s Created list %s: %s\n", ok(), id, title)
	return id, nil
}

// RenameList renames a list of the current grid.
func (a *BoardAdapter) RenameList(ctx context.Context, listID, title string) error {
	list, err := a.findList(ctx, listID)
	if err != nil {
		return err
	}
	if err := a.service.UpdateList(ctx, listID, models.ListUpdate{Title: &title}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s List %s renamed\n", ok(), listID)
	fmt.Fprintf(a.out, "  %s → %s\n", list.Title, title)
	return nil
}

// DeleteList deletes a list and its items.
func (a *BoardAdapter) DeleteList(ctx context.Context, listID string) error {
	list, err := a.findList(ctx, listID)
	if err != nil {
		return err
	}
	if err := a.service.DeleteList(ctx, listID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Deleted list %s: %s (%d items)\n", ok(), listID, list.Title, len(list.Items))
	return nil
}

// ReorderLists sets the list order of the current grid.
func (a *BoardAdapter) ReorderLists(ctx context.Context, listIDs []string) error {
	if a.service.CurrentGrid(ctx) == nil {
		return errNoCurrentGrid
	}
	if err := a.service.ReorderLists(ctx, listIDs); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Lists reordered\n", ok())
	return nil
}

// AddItem appends an item to a list.
func (a *BoardAdapter) AddItem(ctx context.Context, listID, title string) (string, error) {
	if _, err := a.findList(ctx, listID); err != nil {
		return "", err
	}
	id, err := a.service.AddItem(ctx, listID, title)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(a.out, "%s Added item %s: %s\n", ok(), id, title)
	return id, nil
}

// EditItem changes the title of an item.
func (a *BoardAdapter) EditItem(ctx context.Context, listID, itemID, title string) error {
	item, err := a.findItem(ctx, listID, itemID)
	if err != nil {
		return err
	}
	updated := item
	updated.Title = title
	if err := a.service.UpdateItem(ctx, listID, updated); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Item %s updated\n", ok(), itemID)
	fmt.Fprintf(a.out, "  %s → %s\n", item.Title, title)
	return nil
}

// DeleteItem deletes an item.
func (a *BoardAdapter) DeleteItem(ctx context.Context, listID, itemID string) error {
	item, err := a.findItem(ctx, listID, itemID)
	if err != nil {
		return err
	}
	if err := a.service.DeleteItem(ctx, listID, itemID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Deleted item %s: %s\n", ok(), itemID, item.Title)
	return nil
}

// ReorderItems sets the item order of a list.
func (a *BoardAdapter) ReorderItems(ctx context.Context, listID string, itemIDs []string) error {
	if _, err := a.findList(ctx, listID); err != nil {
		return err
	}
	if err := a.service.ReorderItems(ctx, listID, itemIDs); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Items of list %s reordered\n", ok(), listID)
	return nil
}

// MoveItem moves an item to another list, or within its list.
func (a *BoardAdapter) MoveItem(ctx context.Context, req models.MoveItemRequest) error {
	item, err := a.findItem(ctx, req.FromListID, req.ItemID)
	if err != nil {
		return err
	}
	target, err := a.findList(ctx, req.ToListID)
	if err != nil {
		return err
	}
	if err := a.service.MoveItem(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Moved item %s (%s) to %s\n", ok(), item.ID, item.Title, target.Title)
	return nil
}

// Helper methods

var errNoCurrentGrid = errors.New("no current grid (create one with: gridboard grid create <title>)")

func (a *BoardAdapter) findList(ctx context.Context, listID string) (models.List, error) {
	grid := a.service.CurrentGrid(ctx)
	if grid == nil {
		return models.List{}, errNoCurrentGrid
	}
	i := grid.ListIndex(listID)
	if i < 0 {
		return models.List{}, fmt.Errorf("list %s not found in grid %s", listID, grid.ID)
	}
	return grid.Lists[i], nil
}

func (a *BoardAdapter) findItem(ctx context.Context, listID, itemID string) (models.Item, error) {
	list, err := a.findList(ctx, listID)
	if err != nil {
		return models.Item{}, err
	}
	i := list.ItemIndex(itemID)
	if i < 0 {
		return models.Item{}, fmt.Errorf("item %s not found in list %s", itemID, listID)
	}
	return list.Items[i], nil
}

func ok() string {
	return color.New(color.FgGreen).Sprint("✓")
}
