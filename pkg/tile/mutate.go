package tile

import (
	"fmt"
	"slices"
)

// AddGrid creates a Grid. With an empty parentColumnID it becomes the
// workspace root; otherwise it becomes the child of that column. A
// column whose child link points at a live tile is refused with
// [ErrAlreadyHasChild]; a dangling link is replaced. Returns the new
// grid's id.
func (w *Workspace) AddGrid(parentColumnID string) (string, error) {
	if parentColumnID == "" {
		if w.root != "" && w.store.Has(w.root) {
			return "", fmt.Errorf("workspace already has root grid %q: %w", w.root, ErrAlreadyHasChild)
		}
		g := &Tile{Kind: KindGrid}
		w.store.Insert(g)
		w.root = g.ID
		w.notify()
		return g.ID, nil
	}

	col, err := w.store.GetKind(parentColumnID, KindColumn)
	if err != nil {
		return "", fmt.Errorf("add grid: %w", err)
	}
	if col.Child != "" && w.store.Has(col.Child) {
		return "", fmt.Errorf("column %q holds %q: %w", col.ID, col.Child, ErrAlreadyHasChild)
	}
	g := &Tile{Kind: KindGrid, Parent: col.ID}
	w.store.Insert(g)
	col.Child = g.ID
	w.notify()
	return g.ID, nil
}

// AddRow appends a Row with the given height to a grid's row sequence.
// Returns an error wrapping [ErrInvalidParent] if the target exists but
// is not a Grid.
func (w *Workspace) AddRow(parentGridID string, height Size) (string, error) {
	g, err := w.store.Get(parentGridID)
	if err != nil {
		return "", fmt.Errorf("add row: %w", err)
	}
	if g.Kind != KindGrid {
		return "", fmt.Errorf("add row to %s %q: %w", g.Kind, g.ID, ErrInvalidParent)
	}
	r := &Tile{Kind: KindRow, Parent: g.ID, Height: height}
	w.store.Insert(r)
	g.Rows = append(g.Rows, r.ID)
	w.notify()
	return r.ID, nil
}

// AddColumn appends a Column with the given width to a row's column
// sequence. Returns an error wrapping [ErrInvalidParent] if the target
// exists but is not a Row.
func (w *Workspace) AddColumn(parentRowID string, width Size) (string, error) {
	r, err := w.store.Get(parentRowID)
	if err != nil {
		return "", fmt.Errorf("add column: %w", err)
	}
	if r.Kind != KindRow {
		return "", fmt.Errorf("add column to %s %q: %w", r.Kind, r.ID, ErrInvalidParent)
	}
	c := &Tile{Kind: KindColumn, Parent: r.ID, Width: width}
	w.store.Insert(c)
	r.Columns = append(r.Columns, c.ID)
	w.notify()
	return c.ID, nil
}

// AddPanel creates a Panel as a column's child. Returns an error
// wrapping [ErrAlreadyHasChild] if the column already holds a live
// child, or [ErrInvalidParent] if the target is not a Column.
func (w *Workspace) AddPanel(parentColumnID string) (string, error) {
	col, err := w.store.Get(parentColumnID)
	if err != nil {
		return "", fmt.Errorf("add panel: %w", err)
	}
	if col.Kind != KindColumn {
		return "", fmt.Errorf("add panel to %s %q: %w", col.Kind, col.ID, ErrInvalidParent)
	}
	if col.Child != "" && w.store.Has(col.Child) {
		return "", fmt.Errorf("column %q holds %q: %w", col.ID, col.Child, ErrAlreadyHasChild)
	}
	p := &Tile{Kind: KindPanel, Parent: col.ID}
	w.store.Insert(p)
	col.Child = p.ID
	w.notify()
	return p.ID, nil
}

// AddTab creates a Tab plus its empty Content leaf and appends it to a
// panel's tab sequence. With makeActive the tab becomes the panel's
// active tab and the panel becomes the workspace's active panel.
// Returns the new tab's id.
func (w *Workspace) AddTab(parentPanelID, name string, makeActive bool) (string, error) {
	p, err := w.store.Get(parentPanelID)
	if err != nil {
		return "", fmt.Errorf("add tab: %w", err)
	}
	if p.Kind != KindPanel {
		return "", fmt.Errorf("add tab to %s %q: %w", p.Kind, p.ID, ErrInvalidParent)
	}
	t := &Tile{Kind: KindTab, Parent: p.ID, Name: name}
	w.store.Insert(t)
	c := &Tile{Kind: KindContent, Parent: t.ID}
	w.store.Insert(c)
	t.Content = c.ID
	p.Tabs = append(p.Tabs, t.ID)
	if makeActive {
		p.ActiveTab = t.ID
		w.activePanel = p.ID
		w.reconcileFocus()
	}
	w.notify()
	return t.ID, nil
}

// RemoveTile recursively destroys the tile and all its descendants,
// detaches it from its parent's child collection, redistributes its
// freed size to the remaining siblings, and runs the cleanup pass
// upward from the former parent. Removing the root grid empties the
// workspace.
func (w *Workspace) RemoveTile(id string) error {
	t, err := w.store.Get(id)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	parent := t.Parent
	w.detach(t)
	w.destroy(t)
	if w.root == id {
		w.root = ""
	}
	if parent != "" {
		w.cleanup(parent)
	}
	w.reconcileFocus()
	w.notify()
	return nil
}

// MoveTab relocates a tab to the target panel at the given index; a
// negative or out-of-range index appends. Moving a tab within its own
// panel degenerates to a reorder. The moved tab becomes active in the
// target panel and the target panel becomes the active panel; if the
// tab was its source panel's active tab, the tab that shifted into the
// vacated index takes over (else the previous one, else none). The
// source panel is cleaned up afterwards since it may now be empty.
func (w *Workspace) MoveTab(tabID, targetPanelID string, index int) error {
	if err := w.moveTab(tabID, targetPanelID, index); err != nil {
		return err
	}
	w.notify()
	return nil
}

// moveTab is MoveTab without the settle notification, shared with
// SplitPanel. All validation happens before any mutation.
func (w *Workspace) moveTab(tabID, targetPanelID string, index int) error {
	tab, err := w.store.GetKind(tabID, KindTab)
	if err != nil {
		return fmt.Errorf("move tab: %w", err)
	}
	target, err := w.store.GetKind(targetPanelID, KindPanel)
	if err != nil {
		return fmt.Errorf("move tab: %w", err)
	}
	source, err := w.store.GetKind(tab.Parent, KindPanel)
	if err != nil {
		return fmt.Errorf("move tab %q: source panel: %w", tabID, err)
	}
	srcIdx := slices.Index(source.Tabs, tabID)
	if srcIdx < 0 {
		return fmt.Errorf("tab %q not listed by panel %q: %w", tabID, source.ID, ErrTabNotInPanel)
	}

	source.Tabs = slices.Delete(source.Tabs, srcIdx, srcIdx+1)
	if source.ActiveTab == tabID {
		source.ActiveTab = nextActiveTab(source.Tabs, srcIdx)
	}

	if index < 0 || index > len(target.Tabs) {
		index = len(target.Tabs)
	}
	target.Tabs = slices.Insert(target.Tabs, index, tabID)
	tab.Parent = target.ID
	target.ActiveTab = tabID
	w.activePanel = target.ID
	w.reconcileFocus()

	if source.ID != target.ID {
		w.cleanup(source.ID)
	}
	return nil
}

// SetComponent assigns a component id and props to the content of a
// tab, or to a column's direct content. The assignment is idempotent:
// if the target already has a Content leaf it is updated in place, so
// repeated calls reuse the same content id. Returns the content id.
func (w *Workspace) SetComponent(tileID, componentID string, props Metadata) (string, error) {
	t, err := w.store.Get(tileID)
	if err != nil {
		return "", fmt.Errorf("set component: %w", err)
	}

	switch t.Kind {
	case KindTab:
		if t.Content != "" {
			if c, cerr := w.store.GetKind(t.Content, KindContent); cerr == nil {
				c.ComponentID = componentID
				c.Props = props
				w.notify()
				return c.ID, nil
			}
		}
		c := &Tile{Kind: KindContent, Parent: t.ID, ComponentID: componentID, Props: props}
		w.store.Insert(c)
		t.Content = c.ID
		w.notify()
		return c.ID, nil

	case KindColumn:
		if t.Child != "" && w.store.Has(t.Child) {
			c, _ := w.store.Get(t.Child)
			if c.Kind != KindContent {
				return "", fmt.Errorf("column %q holds %s %q: %w", t.ID, c.Kind, c.ID, ErrAlreadyHasChild)
			}
			c.ComponentID = componentID
			c.Props = props
			w.notify()
			return c.ID, nil
		}
		c := &Tile{Kind: KindContent, Parent: t.ID, ComponentID: componentID, Props: props}
		w.store.Insert(c)
		t.Child = c.ID
		w.notify()
		return c.ID, nil

	default:
		return "", fmt.Errorf("set component on %s %q: %w", t.Kind, t.ID, ErrInvalidParent)
	}
}

// detach removes the tile from its parent's child collection and
// redistributes its freed size where siblings track proportional sizes.
// The tile itself is left in the store for destroy to collect.
func (w *Workspace) detach(t *Tile) {
	if t.Parent == "" {
		return
	}
	p, err := w.store.Get(t.Parent)
	if err != nil {
		return
	}
	switch p.Kind {
	case KindGrid:
		if i := slices.Index(p.Rows, t.ID); i >= 0 {
			p.Rows = slices.Delete(p.Rows, i, i+1)
			w.redistributeRows(p, t.Height)
		}
	case KindRow:
		if i := slices.Index(p.Columns, t.ID); i >= 0 {
			p.Columns = slices.Delete(p.Columns, i, i+1)
			w.redistributeColumns(p, t.Width)
		}
	case KindColumn:
		if p.Child == t.ID {
			p.Child = ""
		}
	case KindPanel:
		if i := slices.Index(p.Tabs, t.ID); i >= 0 {
			p.Tabs = slices.Delete(p.Tabs, i, i+1)
			if p.ActiveTab == t.ID {
				p.ActiveTab = nextActiveTab(p.Tabs, i)
			}
		}
	case KindTab:
		if p.Content == t.ID {
			p.Content = ""
		}
	}
}

// destroy deletes the tile and all its descendants from the store,
// clearing the active/focus trackers for anything they referenced.
func (w *Workspace) destroy(t *Tile) {
	children := make([]string, 0, len(t.Rows)+len(t.Columns)+len(t.Tabs)+1)
	children = append(children, t.Rows...)
	children = append(children, t.Columns...)
	children = append(children, t.Tabs...)
	if t.Child != "" {
		children = append(children, t.Child)
	}
	if t.Content != "" {
		children = append(children, t.Content)
	}
	for _, id := range children {
		if c, err := w.store.Get(id); err == nil {
			w.destroy(c)
		}
	}
	if w.activePanel == t.ID {
		w.activePanel = ""
	}
	if w.focusedTab == t.ID {
		w.focusedTab = ""
	}
	w.store.Delete(t.ID)
}

// redistributeRows spreads a freed height across a grid's remaining rows.
func (w *Workspace) redistributeRows(grid *Tile, freed Size) {
	rows := make([]*Tile, 0, len(grid.Rows))
	sizes := make([]Size, 0, len(grid.Rows))
	for _, id := range grid.Rows {
		if r, err := w.store.Get(id); err == nil {
			rows = append(rows, r)
			sizes = append(sizes, r.Height)
		}
	}
	for i, s := range Redistribute(sizes, freed, w.viewportH) {
		rows[i].Height = s
	}
}

// redistributeColumns spreads a freed width across a row's remaining columns.
func (w *Workspace) redistributeColumns(row *Tile, freed Size) {
	cols := make([]*Tile, 0, len(row.Columns))
	sizes := make([]Size, 0, len(row.Columns))
	for _, id := range row.Columns {
		if c, err := w.store.Get(id); err == nil {
			cols = append(cols, c)
			sizes = append(sizes, c.Width)
		}
	}
	for i, s := range Redistribute(sizes, freed, w.viewportW) {
		cols[i].Width = s
	}
}

// nextActiveTab picks the replacement active tab after the tab at the
// vacated index was removed from tabs: the tab that shifted into that
// index, else the previous one, else none.
func nextActiveTab(tabs []string, vacated int) string {
	if len(tabs) == 0 {
		return ""
	}
	if vacated < len(tabs) {
		return tabs[vacated]
	}
	return tabs[len(tabs)-1]
}
