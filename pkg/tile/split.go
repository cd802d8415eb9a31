package tile

import (
	"fmt"
	"slices"
)

// SplitPanel carves a new panel out of space adjacent to targetPanelID
// in the given direction and moves tabID into it. Returns the new
// panel's id.
//
// For left/right splits the target panel's column is halved and a new
// sibling column takes the other half. For top/bottom splits a panel
// that occupies a full-width row has that row halved and a sibling row
// inserted into its grid; a panel sharing its row with other columns
// has its cell wrapped in a synthesized two-row nested grid instead.
//
// A split that would use the target panel's only tab against itself is
// refused with [ErrDegenerateSplit]: it would just recreate the same
// panel. All lookups and validation happen before any structural
// change, so a failed split leaves the tree untouched.
func (w *Workspace) SplitPanel(tabID, targetPanelID string, dir Direction) (string, error) {
	tab, err := w.store.GetKind(tabID, KindTab)
	if err != nil {
		return "", fmt.Errorf("split: %w", err)
	}
	target, err := w.store.GetKind(targetPanelID, KindPanel)
	if err != nil {
		return "", fmt.Errorf("split: %w", err)
	}
	if len(target.Tabs) == 1 && target.Tabs[0] == tabID {
		return "", fmt.Errorf("split panel %q with its only tab %q: %w", targetPanelID, tabID, ErrDegenerateSplit)
	}
	// The tab must be movable: attached to a live panel that lists it.
	source, err := w.store.GetKind(tab.Parent, KindPanel)
	if err != nil {
		return "", fmt.Errorf("split: tab %q: source panel: %w", tabID, err)
	}
	if !slices.Contains(source.Tabs, tabID) {
		return "", fmt.Errorf("tab %q not listed by panel %q: %w", tabID, source.ID, ErrTabNotInPanel)
	}

	var newPanelID string
	switch dir {
	case DirectionLeft, DirectionRight:
		newPanelID, err = w.splitHorizontal(target, dir)
	case DirectionTop, DirectionBottom:
		newPanelID, err = w.splitVertical(target, dir)
	default:
		return "", fmt.Errorf("split direction %q: %w", dir, ErrInvalidDirection)
	}
	if err != nil {
		return "", err
	}

	// moveTab cannot fail here: tab, source and the new panel were all
	// validated or created above. It also activates the moved tab and
	// cleans up the source panel if the move emptied it.
	if err := w.moveTab(tabID, newPanelID, -1); err != nil {
		return "", fmt.Errorf("split: %w", err)
	}
	w.notify()
	return newPanelID, nil
}

// splitHorizontal halves the target panel's column and inserts a new
// sibling column holding the new panel before (left) or after (right)
// it in the row's column sequence.
func (w *Workspace) splitHorizontal(target *Tile, dir Direction) (string, error) {
	col, err := w.store.GetKind(target.Parent, KindColumn)
	if err != nil {
		return "", fmt.Errorf("split %s: %w", dir, err)
	}
	row, err := w.store.GetKind(col.Parent, KindRow)
	if err != nil {
		return "", fmt.Errorf("split %s: %w", dir, err)
	}
	idx := slices.Index(row.Columns, col.ID)
	if idx < 0 {
		return "", fmt.Errorf("split %s: column %q not listed by row %q: %w", dir, col.ID, row.ID, ErrTileNotFound)
	}

	half := col.Width
	half.Value /= 2
	col.Width = half

	newCol := &Tile{Kind: KindColumn, Parent: row.ID, Width: half}
	w.store.Insert(newCol)
	panel := &Tile{Kind: KindPanel, Parent: newCol.ID}
	w.store.Insert(panel)
	newCol.Child = panel.ID

	at := idx
	if dir == DirectionRight {
		at = idx + 1
	}
	row.Columns = slices.Insert(row.Columns, at, newCol.ID)
	return panel.ID, nil
}

// splitVertical stacks a new panel above (top) or below (bottom) the
// target panel. A panel that occupies a full-width row gets a sibling
// row in its own grid, so the new row takes half the host row's height
// and repeated stacking stays flat. A panel sharing its row with other
// columns cannot gain a grid-level sibling without spanning the full
// width, so its cell is wrapped in a two-row nested grid instead.
func (w *Workspace) splitVertical(target *Tile, dir Direction) (string, error) {
	col, err := w.store.GetKind(target.Parent, KindColumn)
	if err != nil {
		return "", fmt.Errorf("split %s: %w", dir, err)
	}
	row, err := w.store.GetKind(col.Parent, KindRow)
	if err != nil {
		return "", fmt.Errorf("split %s: %w", dir, err)
	}
	grid, err := w.store.GetKind(row.Parent, KindGrid)
	if err != nil {
		return "", fmt.Errorf("split %s: %w", dir, err)
	}

	if len(row.Columns) == 1 && row.Columns[0] == col.ID {
		return w.insertSiblingRow(grid, row, dir)
	}
	return w.wrapCellInGrid(col, target, dir)
}

// wrapCellInGrid replaces the column's child with a synthesized grid of
// two equal-height rows: one re-hosting the original panel, one holding
// a fresh panel, ordered per direction.
func (w *Workspace) wrapCellInGrid(col, target *Tile, dir Direction) (string, error) {
	grid := &Tile{Kind: KindGrid, Parent: col.ID}
	w.store.Insert(grid)

	oldRow := &Tile{Kind: KindRow, Parent: grid.ID, Height: Percent(50)}
	w.store.Insert(oldRow)
	oldCol := &Tile{Kind: KindColumn, Parent: oldRow.ID, Width: Percent(100), Child: target.ID}
	w.store.Insert(oldCol)
	oldRow.Columns = []string{oldCol.ID}
	target.Parent = oldCol.ID

	newRow := &Tile{Kind: KindRow, Parent: grid.ID, Height: Percent(50)}
	w.store.Insert(newRow)
	newCol := &Tile{Kind: KindColumn, Parent: newRow.ID, Width: Percent(100)}
	w.store.Insert(newCol)
	panel := &Tile{Kind: KindPanel, Parent: newCol.ID}
	w.store.Insert(panel)
	newCol.Child = panel.ID
	newRow.Columns = []string{newCol.ID}

	if dir == DirectionTop {
		grid.Rows = []string{newRow.ID, oldRow.ID}
	} else {
		grid.Rows = []string{oldRow.ID, newRow.ID}
	}
	col.Child = grid.ID
	return panel.ID, nil
}

// insertSiblingRow halves the host row's height and inserts a sibling
// row holding the new panel before (top) or after (bottom) it in the
// grid's row sequence.
func (w *Workspace) insertSiblingRow(grid, hostRow *Tile, dir Direction) (string, error) {
	hostIdx := slices.Index(grid.Rows, hostRow.ID)
	if hostIdx < 0 {
		return "", fmt.Errorf("split %s: row %q not listed by grid %q: %w", dir, hostRow.ID, grid.ID, ErrTileNotFound)
	}

	half := hostRow.Height
	half.Value /= 2
	hostRow.Height = half

	newRow := &Tile{Kind: KindRow, Parent: grid.ID, Height: half}
	w.store.Insert(newRow)
	newCol := &Tile{Kind: KindColumn, Parent: newRow.ID, Width: Percent(100)}
	w.store.Insert(newCol)
	panel := &Tile{Kind: KindPanel, Parent: newCol.ID}
	w.store.Insert(panel)
	newCol.Child = panel.ID
	newRow.Columns = []string{newCol.ID}

	at := hostIdx
	if dir == DirectionBottom {
		at = hostIdx + 1
	}
	grid.Rows = slices.Insert(grid.Rows, at, newRow.ID)
	return panel.ID, nil
}
