package tile

import "maps"

// Kind identifies what a tile is and which of its fields are meaningful.
type Kind string

// Tile kinds. The containment rules are: a Grid is the root or the child
// of a Column; Rows live in Grids; Columns live in Rows; Panels live in
// Columns; Tabs live in Panels; Content lives in a Tab or directly in a
// Column.
const (
	KindGrid    Kind = "grid"
	KindRow     Kind = "row"
	KindColumn  Kind = "column"
	KindPanel   Kind = "panel"
	KindTab     Kind = "tab"
	KindContent Kind = "content"
)

// Direction selects where [Workspace.SplitPanel] places the new panel
// relative to the target panel.
type Direction string

// Split directions.
const (
	DirectionTop    Direction = "top"
	DirectionBottom Direction = "bottom"
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
)

// Metadata stores arbitrary key-value pairs attached to Content tiles.
// The core never inspects the payload - it only stores and retrieves it
// for the host's component registry. Values must round-trip through
// JSON-compatible primitives for snapshots to be portable.
type Metadata map[string]any

// Tile is a single node of the layout tree. Exactly one group of fields
// is meaningful per Kind; the rest stay at their zero values and are
// omitted from JSON snapshots.
//
// Parent is empty only for the root grid. Parents list children by id
// (Rows, Columns, Tabs, Child, Content) and children point back via
// Parent; both directions must always agree.
type Tile struct {
	ID     string `json:"id"`
	Parent string `json:"parent,omitempty"`
	Kind   Kind   `json:"kind"`

	// Grid
	Rows []string `json:"rows,omitempty"`

	// Row
	Columns []string `json:"columns,omitempty"`
	Height  Size     `json:"height,omitzero"`

	// Column
	Child string `json:"child,omitempty"`
	Width Size   `json:"width,omitzero"`

	// Panel
	Tabs      []string `json:"tabs,omitempty"`
	ActiveTab string   `json:"activeTab,omitempty"`

	// Tab
	Name    string `json:"name,omitempty"`
	Lazy    bool   `json:"lazy,omitempty"`
	Content string `json:"content,omitempty"`

	// Content
	ComponentID string   `json:"componentId,omitempty"`
	Props       Metadata `json:"props,omitempty"`
}

// clone returns a deep copy of the tile.
func (t *Tile) clone() *Tile {
	c := *t
	if t.Rows != nil {
		c.Rows = append([]string(nil), t.Rows...)
	}
	if t.Columns != nil {
		c.Columns = append([]string(nil), t.Columns...)
	}
	if t.Tabs != nil {
		c.Tabs = append([]string(nil), t.Tabs...)
	}
	if t.Props != nil {
		c.Props = maps.Clone(t.Props)
	}
	return &c
}
