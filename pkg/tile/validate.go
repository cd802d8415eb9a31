package tile

import (
	"fmt"
	"slices"
)

// Validate walks the whole tree and checks every structural invariant:
// parent/child link agreement, the containment rules, the absence of
// empty containers and redundant single-cell grids, and tracker
// consistency. It returns nil for a valid tree, or an error wrapping
// the sentinel for the first violation found.
//
// Mutation operations maintain these invariants themselves; Validate
// exists for hydration of untrusted snapshots, for tests, and for
// debugging tools.
func (w *Workspace) Validate() error {
	if w.root != "" {
		root, err := w.store.Get(w.root)
		if err != nil {
			return fmt.Errorf("root: %w", err)
		}
		if root.Kind != KindGrid {
			return fmt.Errorf("root %q is a %s: %w", w.root, root.Kind, ErrWrongTileType)
		}
		if root.Parent != "" {
			return fmt.Errorf("root grid %q has parent %q: %w", w.root, root.Parent, ErrInvalidParent)
		}
	}

	for id, t := range w.store.tiles {
		if err := w.validateTile(id, t); err != nil {
			return err
		}
	}
	return w.validateTrackers()
}

func (w *Workspace) validateTile(id string, t *Tile) error {
	if t.Parent == "" && id != w.root {
		return fmt.Errorf("%s %q has no parent and is not the root: %w", t.Kind, id, ErrOrphanTile)
	}

	switch t.Kind {
	case KindGrid:
		if t.Parent != "" {
			col, err := w.parentOf(t, KindColumn)
			if err != nil {
				return err
			}
			if col.Child != id {
				return fmt.Errorf("grid %q not held by its column %q: %w", id, col.ID, ErrOrphanTile)
			}
			if len(t.Rows) == 0 {
				return fmt.Errorf("nested grid %q has no rows: %w", id, ErrEmptyContainer)
			}
			if w.isSingleCell(t) {
				return fmt.Errorf("nested grid %q: %w", id, ErrRedundantGrid)
			}
		}
		for _, rid := range t.Rows {
			if _, err := w.store.GetKind(rid, KindRow); err != nil {
				return fmt.Errorf("grid %q row: %w", id, err)
			}
		}

	case KindRow:
		grid, err := w.parentOf(t, KindGrid)
		if err != nil {
			return err
		}
		if !slices.Contains(grid.Rows, id) {
			return fmt.Errorf("row %q not listed by grid %q: %w", id, grid.ID, ErrOrphanTile)
		}
		if len(t.Columns) == 0 {
			return fmt.Errorf("row %q has no columns: %w", id, ErrEmptyContainer)
		}
		for _, cid := range t.Columns {
			if _, err := w.store.GetKind(cid, KindColumn); err != nil {
				return fmt.Errorf("row %q column: %w", id, err)
			}
		}

	case KindColumn:
		row, err := w.parentOf(t, KindRow)
		if err != nil {
			return err
		}
		if !slices.Contains(row.Columns, id) {
			return fmt.Errorf("column %q not listed by row %q: %w", id, row.ID, ErrOrphanTile)
		}
		child, err := w.store.Get(t.Child)
		if err != nil {
			return fmt.Errorf("column %q child: %w: %w", id, ErrEmptyContainer, err)
		}
		switch child.Kind {
		case KindPanel, KindGrid, KindContent:
		default:
			return fmt.Errorf("column %q holds %s %q: %w", id, child.Kind, child.ID, ErrWrongTileType)
		}

	case KindPanel:
		col, err := w.parentOf(t, KindColumn)
		if err != nil {
			return err
		}
		if col.Child != id {
			return fmt.Errorf("panel %q not held by its column %q: %w", id, col.ID, ErrOrphanTile)
		}
		if len(t.Tabs) == 0 {
			return fmt.Errorf("panel %q has no tabs: %w", id, ErrEmptyContainer)
		}
		for _, tid := range t.Tabs {
			if _, err := w.store.GetKind(tid, KindTab); err != nil {
				return fmt.Errorf("panel %q tab: %w", id, err)
			}
		}
		if t.ActiveTab != "" && !slices.Contains(t.Tabs, t.ActiveTab) {
			return fmt.Errorf("panel %q active tab %q: %w", id, t.ActiveTab, ErrTabNotInPanel)
		}

	case KindTab:
		panel, err := w.parentOf(t, KindPanel)
		if err != nil {
			return err
		}
		if !slices.Contains(panel.Tabs, id) {
			return fmt.Errorf("tab %q not listed by panel %q: %w", id, panel.ID, ErrOrphanTile)
		}
		if t.Content != "" {
			if _, err := w.store.GetKind(t.Content, KindContent); err != nil {
				return fmt.Errorf("tab %q content: %w", id, err)
			}
		}

	case KindContent:
		p, err := w.store.Get(t.Parent)
		if err != nil {
			return fmt.Errorf("content %q parent: %w", id, err)
		}
		switch p.Kind {
		case KindTab:
			if p.Content != id {
				return fmt.Errorf("content %q not held by its tab %q: %w", id, p.ID, ErrOrphanTile)
			}
		case KindColumn:
			if p.Child != id {
				return fmt.Errorf("content %q not held by its column %q: %w", id, p.ID, ErrOrphanTile)
			}
		default:
			return fmt.Errorf("content %q under %s %q: %w", id, p.Kind, p.ID, ErrInvalidParent)
		}

	default:
		return fmt.Errorf("tile %q has unknown kind %q: %w", id, t.Kind, ErrWrongTileType)
	}
	return nil
}

// parentOf fetches a tile's parent and checks its kind, mapping both
// failure modes onto the containment-rule error.
func (w *Workspace) parentOf(t *Tile, kind Kind) (*Tile, error) {
	p, err := w.store.Get(t.Parent)
	if err != nil {
		return nil, fmt.Errorf("%s %q parent: %w", t.Kind, t.ID, err)
	}
	if p.Kind != kind {
		return nil, fmt.Errorf("%s %q under %s %q: %w", t.Kind, t.ID, p.Kind, p.ID, ErrInvalidParent)
	}
	return p, nil
}

// isSingleCell reports whether the grid holds exactly one row with
// exactly one column.
func (w *Workspace) isSingleCell(g *Tile) bool {
	if len(g.Rows) != 1 {
		return false
	}
	row, err := w.store.GetKind(g.Rows[0], KindRow)
	return err == nil && len(row.Columns) == 1
}

func (w *Workspace) validateTrackers() error {
	if w.activePanel != "" {
		if _, err := w.store.GetKind(w.activePanel, KindPanel); err != nil {
			return fmt.Errorf("active panel: %w", err)
		}
	}
	if w.focusedTab != "" {
		tab, err := w.store.GetKind(w.focusedTab, KindTab)
		if err != nil {
			return fmt.Errorf("focused tab: %w", err)
		}
		panel, err := w.store.GetKind(tab.Parent, KindPanel)
		if err != nil {
			return fmt.Errorf("focused tab %q: %w", w.focusedTab, err)
		}
		if panel.ActiveTab != w.focusedTab {
			return fmt.Errorf("focused tab %q is not active in panel %q: %w", w.focusedTab, panel.ID, ErrFocusNotActive)
		}
	}
	return nil
}
