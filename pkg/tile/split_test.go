package tile

import (
	"errors"
	"testing"
)

func TestSplitPanelDegenerate(t *testing.T) {
	// Splitting a panel using its only tab would just recreate it.
	w, panelID, tabs := singlePanel(t, "a")
	before := w.Len()

	if _, err := w.SplitPanel(tabs[0], panelID, DirectionRight); !errors.Is(err, ErrDegenerateSplit) {
		t.Fatalf("split = %v, want ErrDegenerateSplit", err)
	}
	if w.Len() != before {
		t.Errorf("tree mutated on refused split: %d tiles, had %d", w.Len(), before)
	}
	mustValidate(t, w)
}

func TestSplitPanelRight(t *testing.T) {
	// Panel with tabs a, b; splitting b to the right halves the column.
	w, panelID, tabs := singlePanel(t, "a", "b")

	newPanel, err := w.SplitPanel(tabs[1], panelID, DirectionRight)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	oldCol := mustTile(t, w, mustTile(t, w, panelID).Parent)
	newCol := mustTile(t, w, mustTile(t, w, newPanel).Parent)
	row := mustTile(t, w, oldCol.Parent)

	if len(row.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(row.Columns))
	}
	if !equalStrings(row.Columns, []string{oldCol.ID, newCol.ID}) {
		t.Errorf("column order = %v, want old before new", row.Columns)
	}
	if !almostEqual(oldCol.Width.Value, 50) || !almostEqual(newCol.Width.Value, 50) {
		t.Errorf("widths = %v, %v, want 50 each", oldCol.Width.Value, newCol.Width.Value)
	}

	src := mustTile(t, w, panelID)
	if got := tabNames(t, w, src.Tabs); !equalStrings(got, []string{"a"}) {
		t.Errorf("source tabs = %v, want [a]", got)
	}
	if mustTile(t, w, src.ActiveTab).Name != "a" {
		t.Error("source active tab should fall back to a")
	}
	dst := mustTile(t, w, newPanel)
	if got := tabNames(t, w, dst.Tabs); !equalStrings(got, []string{"b"}) {
		t.Errorf("new panel tabs = %v, want [b]", got)
	}
	if dst.ActiveTab != tabs[1] {
		t.Error("moved tab should be active in the new panel")
	}
	if w.ActivePanel() != newPanel {
		t.Errorf("active panel = %q, want new panel %q", w.ActivePanel(), newPanel)
	}
	mustValidate(t, w)
}

func TestSplitPanelLeftInsertsBefore(t *testing.T) {
	w, panelID, tabs := singlePanel(t, "a", "b")

	newPanel, err := w.SplitPanel(tabs[1], panelID, DirectionLeft)
	if err != nil {
		t.Fatal(err)
	}
	oldCol := mustTile(t, w, panelID).Parent
	newCol := mustTile(t, w, newPanel).Parent
	row := mustTile(t, w, mustTile(t, w, oldCol).Parent)
	if !equalStrings(row.Columns, []string{newCol, oldCol}) {
		t.Errorf("column order = %v, want new before old", row.Columns)
	}
	mustValidate(t, w)
}

func TestSplitPanelBottomAddsRow(t *testing.T) {
	// A full-width panel splits vertically by halving its row and
	// gaining a sibling row in the same grid - no nested wrapping.
	w, panelID, tabs := singlePanel(t, "a", "b")

	newPanel, err := w.SplitPanel(tabs[1], panelID, DirectionBottom)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	root := mustTile(t, w, w.Root())
	if len(root.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(root.Rows))
	}
	top := mustTile(t, w, root.Rows[0])
	bottom := mustTile(t, w, root.Rows[1])
	if !almostEqual(top.Height.Value, 50) || !almostEqual(bottom.Height.Value, 50) {
		t.Errorf("row heights = %v, %v, want 50 each", top.Height.Value, bottom.Height.Value)
	}
	if mustTile(t, w, top.Columns[0]).Child != panelID {
		t.Error("original panel should stay in the top row")
	}
	if mustTile(t, w, bottom.Columns[0]).Child != newPanel {
		t.Error("new panel should occupy the bottom row")
	}
	if w.Stats().Grids != 1 {
		t.Errorf("grids = %d, want 1", w.Stats().Grids)
	}
	mustValidate(t, w)
}

func TestSplitPanelTopOrdersNewRowFirst(t *testing.T) {
	w, panelID, tabs := singlePanel(t, "a", "b")

	newPanel, err := w.SplitPanel(tabs[1], panelID, DirectionTop)
	if err != nil {
		t.Fatal(err)
	}
	root := mustTile(t, w, w.Root())
	first := mustTile(t, w, root.Rows[0])
	if mustTile(t, w, first.Columns[0]).Child != newPanel {
		t.Error("top split should place the new panel's row first")
	}
	mustValidate(t, w)
}

func TestSplitPanelStacksStayFlat(t *testing.T) {
	// Repeated vertical splits keep inserting rows into the same grid
	// instead of nesting a grid per split.
	w, panelID, _ := singlePanel(t, "a", "b", "c")
	tabs := mustTile(t, w, panelID).Tabs

	if _, err := w.SplitPanel(tabs[2], panelID, DirectionBottom); err != nil {
		t.Fatal(err)
	}
	newPanel, err := w.SplitPanel(tabs[1], panelID, DirectionBottom)
	if err != nil {
		t.Fatalf("second split: %v", err)
	}
	if w.Stats().Grids != 1 {
		t.Errorf("grids = %d, want 1", w.Stats().Grids)
	}

	// Three stacked rows: the host was halved 50 -> 25/25, the first
	// split's row keeps its 50, and the new row sits directly below the
	// host.
	hostCol := mustTile(t, w, panelID).Parent
	hostRow := mustTile(t, w, mustTile(t, w, hostCol).Parent)
	root := mustTile(t, w, w.Root())
	if len(root.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(root.Rows))
	}
	if !almostEqual(hostRow.Height.Value, 25) {
		t.Errorf("host row height = %v, want 25", hostRow.Height.Value)
	}
	newCol := mustTile(t, w, newPanel).Parent
	newRow := mustTile(t, w, mustTile(t, w, newCol).Parent)
	if !almostEqual(newRow.Height.Value, 25) {
		t.Errorf("new row height = %v, want 25", newRow.Height.Value)
	}
	if root.Rows[1] != newRow.ID {
		t.Errorf("row order = %v, want new row directly below host", root.Rows)
	}
	mustValidate(t, w)
}

func TestSplitPanelBottomWrapsSharedRow(t *testing.T) {
	// A panel sharing its row with a sibling column cannot gain a row
	// of its own; its cell is wrapped in a nested two-row grid.
	w, panelA, tabsA := singlePanel(t, "a", "b")
	if _, err := w.SplitPanel(tabsA[1], panelA, DirectionRight); err != nil {
		t.Fatal(err)
	}
	tabC, err := w.AddTab(panelA, "c", true)
	if err != nil {
		t.Fatal(err)
	}
	outerCol := mustTile(t, w, panelA).Parent

	newPanel, err := w.SplitPanel(tabC, panelA, DirectionBottom)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	nested := mustTile(t, w, mustTile(t, w, outerCol).Child)
	if nested.Kind != KindGrid {
		t.Fatalf("outer column child is %s, want nested grid", nested.Kind)
	}
	if len(nested.Rows) != 2 {
		t.Fatalf("nested rows = %d, want 2", len(nested.Rows))
	}
	top := mustTile(t, w, nested.Rows[0])
	bottom := mustTile(t, w, nested.Rows[1])
	if !almostEqual(top.Height.Value, 50) || !almostEqual(bottom.Height.Value, 50) {
		t.Errorf("nested heights = %v, %v, want 50 each", top.Height.Value, bottom.Height.Value)
	}
	if mustTile(t, w, top.Columns[0]).Child != panelA {
		t.Error("original panel should sit in the nested top row")
	}
	if mustTile(t, w, bottom.Columns[0]).Child != newPanel {
		t.Error("new panel should sit in the nested bottom row")
	}
	mustValidate(t, w)
}

func TestSplitPanelInvalidDirection(t *testing.T) {
	w, panelID, tabs := singlePanel(t, "a", "b")
	if _, err := w.SplitPanel(tabs[0], panelID, Direction("diagonal")); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("split = %v, want ErrInvalidDirection", err)
	}
}

func TestSplitPanelFromOtherPanel(t *testing.T) {
	// Splitting with a tab from a different panel empties that panel
	// when the tab was its last; cleanup removes it and hands its width
	// back.
	w, panelA, tabsA := singlePanel(t, "a", "b")
	panelB, err := w.SplitPanel(tabsA[1], panelA, DirectionRight)
	if err != nil {
		t.Fatal(err)
	}

	// The degenerate check guards the target's own single tab, not the
	// source's, so pulling panel B's last tab into a split of panel A
	// is allowed.
	if _, err := w.SplitPanel(tabsA[1], panelA, DirectionBottom); err != nil {
		t.Fatalf("cross-panel split: %v", err)
	}
	if _, err := w.Tile(panelB); !errors.Is(err, ErrTileNotFound) {
		t.Error("emptied source panel should have been cleaned up")
	}
	mustValidate(t, w)
}
