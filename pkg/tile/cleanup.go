package tile

// cleanup walks from the mutation site upward to the root, removing
// containers the mutation emptied and collapsing redundant grid
// nesting. At each level:
//
//   - a Panel with no tabs, a Column with no live child, and a Row with
//     no columns are removed, with their freed size redistributed to
//     the remaining siblings
//   - a non-root Grid with no rows is removed
//   - a Grid whose content is a single row with a single column is
//     spliced out: the inner column's child is wired directly into the
//     grid's parent column
//
// The pass is idempotent and never removes the root grid itself - an
// empty root is a valid, renders-nothing state.
func (w *Workspace) cleanup(id string) {
	cur := id
	for cur != "" {
		t, err := w.store.Get(cur)
		if err != nil {
			return
		}
		parent := t.Parent

		switch t.Kind {
		case KindPanel:
			if len(t.Tabs) == 0 {
				w.detach(t)
				w.destroy(t)
			}
		case KindColumn:
			if t.Child == "" || !w.store.Has(t.Child) {
				w.detach(t)
				w.destroy(t)
			}
		case KindRow:
			if len(t.Columns) == 0 {
				w.detach(t)
				w.destroy(t)
			}
		case KindGrid:
			if len(t.Rows) == 0 && t.ID != w.root {
				w.detach(t)
				w.destroy(t)
			} else {
				w.simplifyGrid(t)
			}
		}

		cur = parent
	}
	w.reconcileFocus()
}

// simplifyGrid collapses a grid holding exactly one row with exactly
// one column. For a nested grid the inner column's child is spliced
// directly into the grid's parent column and the grid, row and column
// are discarded. The root grid only collapses when its single cell
// holds another grid, which is then promoted to root; a root grid with
// a single panel or content cell is already as simple as it gets.
func (w *Workspace) simplifyGrid(g *Tile) {
	if len(g.Rows) != 1 {
		return
	}
	row, err := w.store.GetKind(g.Rows[0], KindRow)
	if err != nil || len(row.Columns) != 1 {
		return
	}
	col, err := w.store.GetKind(row.Columns[0], KindColumn)
	if err != nil {
		return
	}
	child, err := w.store.Get(col.Child)
	if err != nil {
		return
	}

	if g.ID == w.root {
		if child.Kind != KindGrid {
			return
		}
		child.Parent = ""
		w.root = child.ID
		w.store.Delete(col.ID)
		w.store.Delete(row.ID)
		w.store.Delete(g.ID)
		w.simplifyGrid(child)
		return
	}

	parentCol, err := w.store.GetKind(g.Parent, KindColumn)
	if err != nil {
		return
	}
	parentCol.Child = child.ID
	child.Parent = parentCol.ID
	w.store.Delete(col.ID)
	w.store.Delete(row.ID)
	w.store.Delete(g.ID)
}
