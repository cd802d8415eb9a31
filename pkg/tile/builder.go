package tile

import "fmt"

// Builder is a fluent construction façade over the workspace's
// primitive mutation operations. It adds no invariants of its own -
// every call maps onto one engine operation - and carries the first
// error encountered, turning subsequent calls into no-ops so that a
// chain can be written without per-step error handling:
//
//	b := tile.NewBuilder(w)
//	b.Grid().Row(tile.Percent(100)).Column(tile.Percent(100)).
//		Panel().Tab("editor").Tab("terminal")
//	if err := b.Err(); err != nil {
//		return err
//	}
//
// Row, Column, Panel and Tab each apply to the most recently created
// ancestor of the appropriate kind.
type Builder struct {
	w   *Workspace
	err error

	grid  string
	row   string
	col   string
	panel string
	tab   string
}

// NewBuilder creates a builder over the given workspace.
func NewBuilder(w *Workspace) *Builder {
	return &Builder{w: w}
}

// Err returns the first error encountered by the chain, or nil.
func (b *Builder) Err() error { return b.err }

// Grid creates the workspace root grid, or a nested grid when called
// after Column.
func (b *Builder) Grid() *Builder {
	if b.err != nil {
		return b
	}
	b.grid, b.err = b.w.AddGrid(b.col)
	b.row, b.col, b.panel, b.tab = "", "", "", ""
	return b
}

// Row appends a row with the given height to the current grid.
func (b *Builder) Row(height Size) *Builder {
	if b.err != nil {
		return b
	}
	if b.grid == "" {
		b.err = fmt.Errorf("builder: Row before Grid: %w", ErrInvalidParent)
		return b
	}
	b.row, b.err = b.w.AddRow(b.grid, height)
	b.col, b.panel, b.tab = "", "", ""
	return b
}

// Column appends a column with the given width to the current row.
func (b *Builder) Column(width Size) *Builder {
	if b.err != nil {
		return b
	}
	if b.row == "" {
		b.err = fmt.Errorf("builder: Column before Row: %w", ErrInvalidParent)
		return b
	}
	b.col, b.err = b.w.AddColumn(b.row, width)
	b.panel, b.tab = "", ""
	return b
}

// Panel creates a panel in the current column.
func (b *Builder) Panel() *Builder {
	if b.err != nil {
		return b
	}
	if b.col == "" {
		b.err = fmt.Errorf("builder: Panel before Column: %w", ErrInvalidParent)
		return b
	}
	b.panel, b.err = b.w.AddPanel(b.col)
	b.tab = ""
	return b
}

// Tab appends an active tab with the given name to the current panel.
func (b *Builder) Tab(name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.panel == "" {
		b.err = fmt.Errorf("builder: Tab before Panel: %w", ErrInvalidParent)
		return b
	}
	b.tab, b.err = b.w.AddTab(b.panel, name, true)
	return b
}

// Component assigns a component id and props to the current tab's
// content, or to the current column when no tab has been created.
func (b *Builder) Component(componentID string, props Metadata) *Builder {
	if b.err != nil {
		return b
	}
	target := b.tab
	if target == "" {
		target = b.col
	}
	if target == "" {
		b.err = fmt.Errorf("builder: Component before Tab or Column: %w", ErrInvalidParent)
		return b
	}
	_, b.err = b.w.SetComponent(target, componentID, props)
	return b
}

// GridID returns the id of the most recently created grid.
func (b *Builder) GridID() string { return b.grid }

// RowID returns the id of the most recently created row.
func (b *Builder) RowID() string { return b.row }

// ColumnID returns the id of the most recently created column.
func (b *Builder) ColumnID() string { return b.col }

// PanelID returns the id of the most recently created panel.
func (b *Builder) PanelID() string { return b.panel }

// TabID returns the id of the most recently created tab.
func (b *Builder) TabID() string { return b.tab }
