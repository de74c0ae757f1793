package board

import (
	"testing"

	"github.com/example/gridboard/internal/core/effects"
	"github.com/example/gridboard/internal/models"
)

// fixture: grid g1 (current) with list l1 [a, b, c] and list l2 [d]; grid g2 empty.
func fixture() *models.AppData {
	data := &models.AppData{Grids: []models.Grid{
		{
			ID:    "g1",
			Title: "Board",
			Lists: []models.List{
				{ID: "l1", Title: "Todo", Order: 0, Items: []models.Item{
					{ID: "a", Title: "A", Order: 0},
					{ID: "b", Title: "B", Order: 1},
					{ID: "c", Title: "C", Order: 2},
				}},
				{ID: "l2", Title: "Done", Order: 1, Items: []models.Item{
					{ID: "d", Title: "D", Order: 0},
				}},
			},
		},
		{ID: "g2", Title: "Other", Lists: []models.List{}},
	}}
	data.SetCurrent("g1")
	return data
}

func itemIDs(l models.List) []string {
	ids := make([]string, len(l.Items))
	for i, it := range l.Items {
		ids[i] = it.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustValid(t *testing.T, data *models.AppData) {
	t.Helper()
	if err := CheckInvariants(data); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestCreateAndPopulateScenario(t *testing.T) {
	data := models.NewAppData()

	plan := PlanCreateGrid(data, "g1", "Board")
	if !plan.Changed || plan.EntityID != "g1" {
		t.Fatalf("expected grid g1 created, got %+v", plan)
	}
	data = plan.Next

	data = PlanCreateList(data, "l1", "Todo").Next
	if data.Grids[0].Lists[0].Order != 0 {
		t.Errorf("list order = %d, want 0", data.Grids[0].Lists[0].Order)
	}

	data = PlanAddItem(data, "l1", "ia", "Task A").Next
	data = PlanAddItem(data, "l1", "ib", "Task B").Next
	items := data.Grids[0].Lists[0].Items
	if items[0].Order != 0 || items[1].Order != 1 {
		t.Fatalf("item orders = %d,%d, want 0,1", items[0].Order, items[1].Order)
	}

	data = PlanReorderItems(data, "l1", []string{"ib", "ia"}).Next
	items = data.Grids[0].Lists[0].Items
	if items[0].ID != "ib" || items[0].Order != 0 || items[1].ID != "ia" || items[1].Order != 1 {
		t.Errorf("after reorder got %+v", items)
	}
	mustValid(t, data)
}

func TestPlanCreateGrid_DefaultTitle(t *testing.T) {
	plan := PlanCreateGrid(models.NewAppData(), "g1", "")
	if plan.Next.Grids[0].Title != models.DefaultGridTitle {
		t.Errorf("title = %q, want %q", plan.Next.Grids[0].Title, models.DefaultGridTitle)
	}
	if plan.Next.CurrentID() != "g1" {
		t.Errorf("current = %q, want g1", plan.Next.CurrentID())
	}
}

func TestPlanCreateGrid_DoesNotMutateInput(t *testing.T) {
	data := fixture()
	_ = PlanCreateGrid(data, "g3", "New")
	if len(data.Grids) != 2 || data.CurrentID() != "g1" {
		t.Errorf("input was mutated: %+v", data)
	}
}

func TestPlanDeleteGrid(t *testing.T) {
	t.Run("current grid redirects to first remaining", func(t *testing.T) {
		plan := PlanDeleteGrid(fixture(), "g1")
		if !plan.Changed {
			t.Fatal("expected change")
		}
		if plan.Next.CurrentID() != "g2" {
			t.Errorf("current = %q, want g2", plan.Next.CurrentID())
		}
		if ContainsID(plan.Next, "l1") || ContainsID(plan.Next, "a") {
			t.Error("expected cascade delete of lists and items")
		}
		mustValid(t, plan.Next)
	})

	t.Run("non-current grid keeps selection", func(t *testing.T) {
		plan := PlanDeleteGrid(fixture(), "g2")
		if plan.Next.CurrentID() != "g1" {
			t.Errorf("current = %q, want g1", plan.Next.CurrentID())
		}
	})

	t.Run("last grid clears selection", func(t *testing.T) {
		data := models.NewAppData()
		data = PlanCreateGrid(data, "g1", "Only").Next
		plan := PlanDeleteGrid(data, "g1")
		if len(plan.Next.Grids) != 0 {
			t.Errorf("expected no grids, got %d", len(plan.Next.Grids))
		}
		if plan.Next.CurrentGridID != nil {
			t.Errorf("expected nil current grid, got %q", *plan.Next.CurrentGridID)
		}
		mustValid(t, plan.Next)
	})

	t.Run("unknown grid is a no-op", func(t *testing.T) {
		plan := PlanDeleteGrid(fixture(), "nope")
		if plan.Changed || plan.Next != nil {
			t.Errorf("expected no-op, got %+v", plan)
		}
	})
}

func TestPlanSelectGrid(t *testing.T) {
	plan := PlanSelectGrid(fixture(), "g2")
	if !plan.Changed || plan.Next.CurrentID() != "g2" {
		t.Errorf("expected g2 selected, got %+v", plan)
	}
	if PlanSelectGrid(fixture(), "missing").Changed {
		t.Error("selecting unknown grid should be a no-op")
	}
	if PlanSelectGrid(fixture(), "g1").Changed {
		t.Error("selecting the current grid should not change state")
	}
}

func TestPlanUpdateGridTitle_NoCurrentGrid(t *testing.T) {
	plan := PlanUpdateGridTitle(models.NewAppData(), "x")
	if plan.Changed {
		t.Fatal("expected no-op without a current grid")
	}
	if len(plan.Effects) != 1 || plan.Effects[0].EffectType() != "log" {
		t.Errorf("expected single log effect, got %v", plan.Effects)
	}
}

func TestPlanCreateList_Order(t *testing.T) {
	plan := PlanCreateList(fixture(), "l3", "Later")
	lists := plan.Next.Grids[0].Lists
	if lists[2].ID != "l3" || lists[2].Order != 2 {
		t.Errorf("new list = %+v, want id l3 order 2", lists[2])
	}
	if len(lists[2].Items) != 0 || lists[2].Items == nil {
		t.Error("expected empty non-nil items")
	}
}

func TestPlanUpdateList(t *testing.T) {
	title := "Doing"
	plan := PlanUpdateList(fixture(), "l2", models.ListUpdate{Title: &title})
	if plan.Next.Grids[0].Lists[1].Title != "Doing" {
		t.Errorf("title = %q, want Doing", plan.Next.Grids[0].Lists[1].Title)
	}
	if plan.Next.Grids[0].Lists[1].Order != 1 {
		t.Error("order should not change on update")
	}
	if PlanUpdateList(fixture(), "l2", models.ListUpdate{}).Changed {
		t.Error("empty update should not change state")
	}
}

func TestPlanDeleteList_RenumbersAndCascades(t *testing.T) {
	plan := PlanDeleteList(fixture(), "l1")
	lists := plan.Next.Grids[0].Lists
	if len(lists) != 1 || lists[0].ID != "l2" || lists[0].Order != 0 {
		t.Errorf("remaining lists = %+v, want [l2@0]", lists)
	}
	for _, id := range []string{"a", "b", "c"} {
		if ContainsID(plan.Next, id) {
			t.Errorf("item %s should be removed with its list", id)
		}
	}
	mustValid(t, plan.Next)
}

func TestPlanAddItem_MissingList(t *testing.T) {
	if PlanAddItem(fixture(), "nope", "x", "X").Changed {
		t.Error("adding to a missing list should be a no-op")
	}
}

func TestPlanUpdateItem_KeepsOrder(t *testing.T) {
	plan := PlanUpdateItem(fixture(), "l1", models.Item{ID: "b", Title: "Bee", Order: 42})
	it := plan.Next.Grids[0].Lists[0].Items[1]
	if it.Title != "Bee" || it.Order != 1 {
		t.Errorf("item = %+v, want title Bee order 1", it)
	}
}

func TestPlanDeleteItem_RenumbersSiblings(t *testing.T) {
	plan := PlanDeleteItem(fixture(), "l1", "b")
	items := plan.Next.Grids[0].Lists[0].Items
	if !equalIDs(itemIDs(plan.Next.Grids[0].Lists[0]), []string{"a", "c"}) {
		t.Fatalf("items = %v, want [a c]", itemIDs(plan.Next.Grids[0].Lists[0]))
	}
	if items[0].Order != 0 || items[1].Order != 1 {
		t.Errorf("orders = %d,%d, want 0,1", items[0].Order, items[1].Order)
	}

	// the next append must not collide with a surviving order
	next := PlanAddItem(plan.Next, "l1", "e", "E").Next
	mustValid(t, next)
}

func TestPlanReorderLists(t *testing.T) {
	t.Run("permutation restamps", func(t *testing.T) {
		plan := PlanReorderLists(fixture(), []string{"l2", "l1"})
		lists := plan.Next.Grids[0].Lists
		if lists[0].ID != "l2" || lists[0].Order != 0 || lists[1].ID != "l1" || lists[1].Order != 1 {
			t.Errorf("lists = %+v", lists)
		}
		if lists[1].Title != "Todo" || len(lists[1].Items) != 3 {
			t.Error("non-order fields must be unchanged")
		}
		mustValid(t, plan.Next)
	})

	t.Run("omitted ids are dropped", func(t *testing.T) {
		plan := PlanReorderLists(fixture(), []string{"l2"})
		lists := plan.Next.Grids[0].Lists
		if len(lists) != 1 || lists[0].ID != "l2" {
			t.Errorf("lists = %+v, want only l2", lists)
		}
	})

	t.Run("unknown and repeated ids ignored", func(t *testing.T) {
		plan := PlanReorderLists(fixture(), []string{"zz", "l1", "l1", "l2"})
		lists := plan.Next.Grids[0].Lists
		if len(lists) != 2 || lists[0].ID != "l1" || lists[1].ID != "l2" {
			t.Errorf("lists = %+v", lists)
		}
		mustValid(t, plan.Next)
	})
}

func TestPlanReorderItems_OrderContiguity(t *testing.T) {
	data := fixture()
	data = PlanDeleteItem(data, "l1", "a").Next
	data = PlanAddItem(data, "l1", "e", "E").Next
	data = PlanReorderItems(data, "l1", []string{"e", "c", "b"}).Next

	l := data.Grids[0].Lists[0]
	for i, it := range l.Items {
		if it.Order != i {
			t.Errorf("item %s order = %d, want %d", it.ID, it.Order, i)
		}
	}
	if !equalIDs(itemIDs(l), []string{"e", "c", "b"}) {
		t.Errorf("items = %v", itemIDs(l))
	}
}

func TestPlanMoveItem(t *testing.T) {
	tests := []struct {
		name     string
		req      models.MoveItemRequest
		wantFrom []string
		wantTo   []string
	}{
		{
			name:     "insert at front of target",
			req:      models.MoveItemRequest{FromListID: "l1", ToListID: "l2", ItemID: "b", Position: 0},
			wantFrom: []string{"a", "c"},
			wantTo:   []string{"b", "d"},
		},
		{
			name:     "negative position appends",
			req:      models.MoveItemRequest{FromListID: "l1", ToListID: "l2", ItemID: "a", Position: -1},
			wantFrom: []string{"b", "c"},
			wantTo:   []string{"d", "a"},
		},
		{
			name:     "position past end appends",
			req:      models.MoveItemRequest{FromListID: "l1", ToListID: "l2", ItemID: "c", Position: 10},
			wantFrom: []string{"a", "b"},
			wantTo:   []string{"d", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanMoveItem(fixture(), tt.req)
			if !plan.Changed {
				t.Fatal("expected change")
			}
			g := plan.Next.Grids[0]
			if got := itemIDs(g.Lists[0]); !equalIDs(got, tt.wantFrom) {
				t.Errorf("source = %v, want %v", got, tt.wantFrom)
			}
			if got := itemIDs(g.Lists[1]); !equalIDs(got, tt.wantTo) {
				t.Errorf("target = %v, want %v", got, tt.wantTo)
			}
			mustValid(t, plan.Next)
		})
	}

	t.Run("same list acts as reorder", func(t *testing.T) {
		plan := PlanMoveItem(fixture(), models.MoveItemRequest{FromListID: "l1", ToListID: "l1", ItemID: "a", Position: 2})
		if got := itemIDs(plan.Next.Grids[0].Lists[0]); !equalIDs(got, []string{"b", "c", "a"}) {
			t.Errorf("items = %v, want [b c a]", got)
		}
		mustValid(t, plan.Next)
	})

	t.Run("missing item is a no-op", func(t *testing.T) {
		plan := PlanMoveItem(fixture(), models.MoveItemRequest{FromListID: "l2", ToListID: "l1", ItemID: "a"})
		if plan.Changed {
			t.Error("expected no-op")
		}
	})
}

func TestPlanEnsureDefaultGrid(t *testing.T) {
	plan := PlanEnsureDefaultGrid(models.NewAppData(), "g1")
	if !plan.Changed || plan.Next.Grids[0].Title != models.StarterGridTitle {
		t.Fatalf("expected starter grid, got %+v", plan)
	}
	again := PlanEnsureDefaultGrid(plan.Next, "g2")
	if again.Changed {
		t.Error("expected no-op when grids exist")
	}
	if len(again.Effects) != 1 || again.Effects[0].EffectType() != "none" {
		t.Errorf("expected a single NoEffect, got %v", again.Effects)
	}
}

func TestSatisfiedPlans_CarryNoEffect(t *testing.T) {
	data := fixture()
	tests := []struct {
		name string
		plan Plan
	}{
		{"select current grid", PlanSelectGrid(data, "g1")},
		{"empty list update", PlanUpdateList(data, "l1", models.ListUpdate{})},
		{"same item title", PlanUpdateItem(data, "l1", models.Item{ID: "a", Title: "A"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.plan.Changed {
				t.Fatal("expected unchanged plan")
			}
			if len(tt.plan.Effects) != 1 {
				t.Fatalf("effects = %v, want single NoEffect", tt.plan.Effects)
			}
			if _, ok := tt.plan.Effects[0].(effects.NoEffect); !ok {
				t.Errorf("effect = %T, want NoEffect", tt.plan.Effects[0])
			}
		})
	}
}

func TestChangedPlan_PersistFirst(t *testing.T) {
	plan := PlanCreateList(fixture(), "l3", "New")
	if len(plan.Effects) != 2 {
		t.Fatalf("effects = %d, want 2", len(plan.Effects))
	}
	if _, ok := plan.Effects[0].(effects.PersistEffect); !ok {
		t.Errorf("first effect = %T, want PersistEffect", plan.Effects[0])
	}
	audit, ok := plan.Effects[1].(effects.AuditEffect)
	if !ok || audit.Action != effects.ActionCreate || audit.EntityID != "l3" {
		t.Errorf("second effect = %+v", plan.Effects[1])
	}
}

func TestNormalizeImport(t *testing.T) {
	missing := "zzz"
	grids := []models.Grid{{
		ID: "g1",
		Lists: []models.List{
			{ID: "l2", Order: 5, Items: []models.Item{{ID: "y", Order: 3}, {ID: "x", Order: 1}}},
			{ID: "l1", Order: 2},
		},
	}}
	data := NormalizeImport(grids, &missing)
	if data.CurrentID() != "g1" {
		t.Errorf("current = %q, want g1", data.CurrentID())
	}
	lists := data.Grids[0].Lists
	if lists[0].ID != "l1" || lists[1].ID != "l2" {
		t.Errorf("lists not sorted by order: %+v", lists)
	}
	if !equalIDs(itemIDs(lists[1]), []string{"x", "y"}) {
		t.Errorf("items = %v, want [x y]", itemIDs(lists[1]))
	}
	mustValid(t, data)

	empty := NormalizeImport(nil, nil)
	if empty.CurrentGridID != nil || len(empty.Grids) != 0 {
		t.Errorf("expected empty data, got %+v", empty)
	}
}

func TestCheckInvariants_Violations(t *testing.T) {
	gap := fixture()
	gap.Grids[0].Lists[0].Items[2].Order = 5
	if CheckInvariants(gap) == nil {
		t.Error("expected order gap to be reported")
	}

	dup := fixture()
	dup.Grids[1].ID = "g1"
	if CheckInvariants(dup) == nil {
		t.Error("expected duplicate id to be reported")
	}

	dangling := fixture()
	dangling.SetCurrent("missing")
	if CheckInvariants(dangling) == nil {
		t.Error("expected dangling current grid to be reported")
	}

	unselected := fixture()
	unselected.SetCurrent("")
	if CheckInvariants(unselected) == nil {
		t.Error("expected grids without a current grid to be reported")
	}

	// An empty-id grid must not satisfy the current grid lookup for a nil selection.
	blank := &models.AppData{Grids: []models.Grid{{ID: "", Title: "x", Lists: []models.List{}}}}
	if CheckInvariants(blank) == nil {
		t.Error("expected empty grid id with no selection to be reported")
	}

	emptyItem := fixture()
	emptyItem.Grids[0].Lists[1].Items[0].ID = ""
	if CheckInvariants(emptyItem) == nil {
		t.Error("expected empty item id to be reported")
	}
}

func TestHasMissingID(t *testing.T) {
	if HasMissingID(fixture().Grids) {
		t.Error("fixture has no empty ids")
	}
	data := fixture()
	data.Grids[0].Lists[0].ID = ""
	if !HasMissingID(data.Grids) {
		t.Error("expected empty list id to be found")
	}
}
