package tile

import (
	"errors"
	"testing"
)

func TestAddGrid(t *testing.T) {
	w := New()
	root, err := w.AddGrid("")
	if err != nil {
		t.Fatalf("AddGrid: %v", err)
	}
	if w.Root() != root {
		t.Errorf("root = %q, want %q", w.Root(), root)
	}

	// A second root is refused.
	if _, err := w.AddGrid(""); !errors.Is(err, ErrAlreadyHasChild) {
		t.Errorf("second root = %v, want ErrAlreadyHasChild", err)
	}
}

func TestAddGridNested(t *testing.T) {
	w := New()
	b := NewBuilder(w)
	b.Grid().Row(Percent(100)).Column(Percent(100))
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}
	col := b.ColumnID()

	nested, err := w.AddGrid(col)
	if err != nil {
		t.Fatalf("AddGrid(col): %v", err)
	}
	if got := mustTile(t, w, col); got.Child != nested {
		t.Errorf("column child = %q, want %q", got.Child, nested)
	}

	// The column is occupied now.
	if _, err := w.AddGrid(col); !errors.Is(err, ErrAlreadyHasChild) {
		t.Errorf("occupied column = %v, want ErrAlreadyHasChild", err)
	}
}

func TestAddRowRejectsNonGrid(t *testing.T) {
	w, panelID, _ := singlePanel(t, "a")
	if _, err := w.AddRow(panelID, Percent(50)); !errors.Is(err, ErrInvalidParent) {
		t.Errorf("AddRow(panel) = %v, want ErrInvalidParent", err)
	}
	if _, err := w.AddRow("missing", Percent(50)); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("AddRow(missing) = %v, want ErrTileNotFound", err)
	}
}

func TestAddColumnRejectsNonRow(t *testing.T) {
	w, _, _ := singlePanel(t, "a")
	if _, err := w.AddColumn(w.Root(), Percent(50)); !errors.Is(err, ErrInvalidParent) {
		t.Errorf("AddColumn(grid) = %v, want ErrInvalidParent", err)
	}
}

func TestAddPanelOccupiedColumn(t *testing.T) {
	w, panelID, _ := singlePanel(t, "a")
	col := mustTile(t, w, panelID).Parent
	if _, err := w.AddPanel(col); !errors.Is(err, ErrAlreadyHasChild) {
		t.Errorf("AddPanel(occupied) = %v, want ErrAlreadyHasChild", err)
	}
}

func TestAddTab(t *testing.T) {
	w, panelID, tabs := singlePanel(t, "a", "b")

	p := mustTile(t, w, panelID)
	if !equalStrings(p.Tabs, tabs) {
		t.Errorf("tabs = %v, want %v", p.Tabs, tabs)
	}
	if p.ActiveTab != tabs[1] {
		t.Errorf("active tab = %q, want last added %q", p.ActiveTab, tabs[1])
	}
	if w.ActivePanel() != panelID {
		t.Errorf("active panel = %q, want %q", w.ActivePanel(), panelID)
	}

	// Every tab owns a content leaf from birth.
	tab := mustTile(t, w, tabs[0])
	if tab.Content == "" {
		t.Fatal("tab has no content leaf")
	}
	if c := mustTile(t, w, tab.Content); c.Kind != KindContent {
		t.Errorf("content kind = %s", c.Kind)
	}

	// makeActive=false leaves the active tab alone.
	id, err := w.AddTab(panelID, "c", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := mustTile(t, w, panelID); got.ActiveTab == id {
		t.Error("inactive AddTab stole activation")
	}
	mustValidate(t, w)
}

func TestRemoveTabActivatesSuccessor(t *testing.T) {
	// One panel, tabs a, b, c with a active. Removing a promotes the
	// tab that shifted into the vacated index.
	w, panelID, tabs := singlePanel(t, "a", "b", "c")
	if err := w.SetActiveTab(tabs[0]); err != nil {
		t.Fatal(err)
	}

	if err := w.RemoveTile(tabs[0]); err != nil {
		t.Fatalf("RemoveTile: %v", err)
	}

	p := mustTile(t, w, panelID)
	if got := tabNames(t, w, p.Tabs); !equalStrings(got, []string{"b", "c"}) {
		t.Errorf("tabs = %v, want [b c]", got)
	}
	if mustTile(t, w, p.ActiveTab).Name != "b" {
		t.Errorf("active = %q, want b", mustTile(t, w, p.ActiveTab).Name)
	}
	if w.Stats().Panels != 1 {
		t.Errorf("panels = %d, want 1", w.Stats().Panels)
	}
	mustValidate(t, w)
}

func TestRemoveLastTabRemovesPanel(t *testing.T) {
	w, panelID, tabs := singlePanel(t, "only")

	if err := w.RemoveTile(tabs[0]); err != nil {
		t.Fatal(err)
	}

	st := w.Stats()
	if st.Panels != 0 || st.Tabs != 0 || st.Contents != 0 {
		t.Errorf("stats = %+v, want empty below root", st)
	}
	// The empty root grid survives.
	if w.Root() == "" {
		t.Error("root grid was removed")
	}
	if w.ActivePanel() != "" {
		t.Errorf("active panel %q dangles after removal", w.ActivePanel())
	}
	if w.Len() != 1 {
		t.Errorf("tiles = %d, want only the root grid", w.Len())
	}
	_ = panelID
	mustValidate(t, w)
}

func TestRemoveTileRecursive(t *testing.T) {
	// Removing the root grid destroys everything.
	w, _, _ := singlePanel(t, "a", "b")
	if err := w.RemoveTile(w.Root()); err != nil {
		t.Fatal(err)
	}
	if w.Len() != 0 {
		t.Errorf("tiles = %d, want 0", w.Len())
	}
	if w.Root() != "" {
		t.Errorf("root = %q, want empty", w.Root())
	}
}

func TestRemoveColumnRedistributesWidth(t *testing.T) {
	// Row with 30/70 columns; removing the 30 leaves the survivor at 100.
	w := New()
	b := NewBuilder(w)
	b.Grid().Row(Percent(100))
	row := b.RowID()
	b.Column(Percent(30)).Panel().Tab("left")
	narrow := b.ColumnID()
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}
	wideCol, err := w.AddColumn(row, Percent(70))
	if err != nil {
		t.Fatal(err)
	}
	widePanel, err := w.AddPanel(wideCol)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.AddTab(widePanel, "right", true); err != nil {
		t.Fatal(err)
	}

	if err := w.RemoveTile(narrow); err != nil {
		t.Fatal(err)
	}
	if got := mustTile(t, w, wideCol).Width; !almostEqual(got.Value, 100) {
		t.Errorf("surviving width = %v, want 100", got.Value)
	}
	mustValidate(t, w)
}

func TestMoveTabRoundTrip(t *testing.T) {
	// Move b from panel A to panel B and back to its original index;
	// panel A's sequence and active tab are restored.
	w, panelA, tabsA := singlePanel(t, "a", "b", "c")
	if err := w.SetActiveTab(tabsA[1]); err != nil {
		t.Fatal(err)
	}
	panelB, err := w.SplitPanel(tabsA[2], panelA, DirectionRight)
	if err != nil {
		t.Fatal(err)
	}

	before := mustTile(t, w, panelA)

	if err := w.MoveTab(tabsA[1], panelB, -1); err != nil {
		t.Fatalf("move out: %v", err)
	}
	if err := w.MoveTab(tabsA[1], panelA, 1); err != nil {
		t.Fatalf("move back: %v", err)
	}
	// Restore activation state changed by the move.
	if err := w.SetActiveTab(tabsA[1]); err != nil {
		t.Fatal(err)
	}

	after := mustTile(t, w, panelA)
	if !equalStrings(after.Tabs, before.Tabs) {
		t.Errorf("tabs = %v, want %v", after.Tabs, before.Tabs)
	}
	if after.ActiveTab != before.ActiveTab {
		t.Errorf("active = %q, want %q", after.ActiveTab, before.ActiveTab)
	}
	mustValidate(t, w)
}

func TestMoveTabSamePanelReorders(t *testing.T) {
	w, panelID, tabs := singlePanel(t, "a", "b", "c")

	if err := w.MoveTab(tabs[0], panelID, 2); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	p := mustTile(t, w, panelID)
	if got := tabNames(t, w, p.Tabs); !equalStrings(got, []string{"b", "c", "a"}) {
		t.Errorf("tabs = %v, want [b c a]", got)
	}
	if p.ActiveTab != tabs[0] {
		t.Errorf("moved tab should be active, got %q", p.ActiveTab)
	}
	mustValidate(t, w)
}

func TestMoveTabEmptiesSourcePanel(t *testing.T) {
	w, panelA, tabs := singlePanel(t, "a", "b")
	panelB, err := w.SplitPanel(tabs[1], panelA, DirectionRight)
	if err != nil {
		t.Fatal(err)
	}

	// Moving panel A's last tab over empties and removes A.
	if err := w.MoveTab(tabs[0], panelB, -1); err != nil {
		t.Fatal(err)
	}
	if w.Stats().Panels != 1 {
		t.Errorf("panels = %d, want 1", w.Stats().Panels)
	}
	if _, err := w.Tile(panelA); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("source panel still present: %v", err)
	}
	mustValidate(t, w)
}

func TestMoveTabErrors(t *testing.T) {
	w, panelID, tabs := singlePanel(t, "a", "b")

	if err := w.MoveTab("missing", panelID, -1); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("missing tab = %v, want ErrTileNotFound", err)
	}
	if err := w.MoveTab(tabs[0], "missing", -1); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("missing panel = %v, want ErrTileNotFound", err)
	}
	if err := w.MoveTab(panelID, panelID, -1); !errors.Is(err, ErrWrongTileType) {
		t.Errorf("panel as tab = %v, want ErrWrongTileType", err)
	}
}

func TestSetComponentIdempotent(t *testing.T) {
	w, _, tabs := singlePanel(t, "a")

	first, err := w.SetComponent(tabs[0], "editor", Metadata{"file": "main.go"})
	if err != nil {
		t.Fatalf("SetComponent: %v", err)
	}
	second, err := w.SetComponent(tabs[0], "terminal", Metadata{"shell": "zsh"})
	if err != nil {
		t.Fatalf("SetComponent again: %v", err)
	}
	if first != second {
		t.Errorf("content id changed: %q then %q", first, second)
	}
	c := mustTile(t, w, second)
	if c.ComponentID != "terminal" {
		t.Errorf("componentId = %q, want terminal", c.ComponentID)
	}
	if c.Props["shell"] != "zsh" {
		t.Errorf("props = %v", c.Props)
	}
	mustValidate(t, w)
}

func TestSetComponentOnColumn(t *testing.T) {
	w := New()
	b := NewBuilder(w)
	b.Grid().Row(Percent(100)).Column(Percent(100))
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}
	col := b.ColumnID()

	id, err := w.SetComponent(col, "statusbar", nil)
	if err != nil {
		t.Fatalf("SetComponent(column): %v", err)
	}
	if got := mustTile(t, w, col); got.Child != id {
		t.Errorf("column child = %q, want %q", got.Child, id)
	}
	mustValidate(t, w)

	// A column holding a panel refuses direct content.
	w2, panelID, _ := singlePanel(t, "a")
	col2 := mustTile(t, w2, panelID).Parent
	if _, err := w2.SetComponent(col2, "statusbar", nil); !errors.Is(err, ErrAlreadyHasChild) {
		t.Errorf("occupied column = %v, want ErrAlreadyHasChild", err)
	}
}

func TestSetComponentRejectsOtherKinds(t *testing.T) {
	w, panelID, _ := singlePanel(t, "a")
	if _, err := w.SetComponent(panelID, "x", nil); !errors.Is(err, ErrInvalidParent) {
		t.Errorf("SetComponent(panel) = %v, want ErrInvalidParent", err)
	}
}
