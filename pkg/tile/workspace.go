package tile

import "fmt"

// Snapshot is a deep, self-contained copy of a workspace's state: the
// full tile mapping plus the root and tracker ids. Snapshots round-trip
// through JSON and are what subscribers, the persistence boundary and
// the rendering boundary consume.
type Snapshot struct {
	Tiles       map[string]Tile `json:"tiles"`
	Root        string          `json:"root,omitempty"`
	ActivePanel string          `json:"activePanel,omitempty"`
	FocusedTab  string          `json:"focusedTab,omitempty"`
}

// subscriber pairs a callback with its registration id so that
// notifications fire in subscription order.
type subscriber struct {
	id int
	fn func(Snapshot)
}

// Workspace owns one layout tree: its store, the viewport basis used
// for mixed-unit size math, the active/focus trackers and the
// subscriber list. Multiple independent workspaces may coexist, each
// with its own state.
//
// The zero value is not usable - use [New] or [Hydrate].
type Workspace struct {
	store *Store
	root  string

	activePanel string
	focusedTab  string

	viewportW float64
	viewportH float64

	subs    []subscriber
	nextSub int
}

// DefaultViewport is the pixel basis assumed until [Workspace.SetViewport]
// is called. At 100x100 a percent value and its pixel projection
// coincide, which keeps uniform-percent layouts exact.
const DefaultViewport = 100

// New creates an empty workspace. The tree has no root until
// [Workspace.AddGrid] is called with no parent.
func New() *Workspace {
	return &Workspace{
		store:     NewStore(),
		viewportW: DefaultViewport,
		viewportH: DefaultViewport,
	}
}

// Hydrate reconstructs a workspace from a snapshot, as produced by
// [Workspace.Snapshot] or decoded from persisted JSON. The snapshot is
// deep-copied, so the caller may keep using it. If the snapshot's Root
// is empty the root is inferred from the unique parentless grid.
//
// Hydrate validates the reconstructed tree and refuses corrupt
// snapshots rather than adopting them; the returned error wraps the
// specific invariant violation.
func Hydrate(snap Snapshot) (*Workspace, error) {
	w := New()
	for id, t := range snap.Tiles {
		c := t.clone()
		if c.ID == "" {
			c.ID = id
		}
		w.store.Insert(c)
	}
	w.root = snap.Root
	if w.root == "" {
		for id, t := range snap.Tiles {
			if t.Parent == "" && t.Kind == KindGrid {
				w.root = id
				break
			}
		}
	}
	w.activePanel = snap.ActivePanel
	w.focusedTab = snap.FocusedTab
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("hydrate: %w", err)
	}
	return w, nil
}

// Snapshot returns a deep copy of the current state.
func (w *Workspace) Snapshot() Snapshot {
	return Snapshot{
		Tiles:       w.store.snapshot(),
		Root:        w.root,
		ActivePanel: w.activePanel,
		FocusedTab:  w.focusedTab,
	}
}

// SetViewport updates the pixel extents used as the basis when
// redistributing mixed-unit sibling sizes. Hosts should call this when
// the rendered container resizes. Values must be positive; others are
// ignored.
func (w *Workspace) SetViewport(width, height float64) {
	if width > 0 {
		w.viewportW = width
	}
	if height > 0 {
		w.viewportH = height
	}
}

// Root returns the id of the root grid, or "" for an empty workspace.
// An empty root is valid - it just renders nothing.
func (w *Workspace) Root() string { return w.root }

// Tile returns a deep copy of the tile with the given id.
func (w *Workspace) Tile(id string) (Tile, error) {
	t, err := w.store.Get(id)
	if err != nil {
		return Tile{}, err
	}
	return *t.clone(), nil
}

// Len returns the number of tiles in the workspace.
func (w *Workspace) Len() int { return w.store.Len() }

// Stats summarizes a workspace's tree by tile kind.
type Stats struct {
	Grids    int `json:"grids"`
	Rows     int `json:"rows"`
	Columns  int `json:"columns"`
	Panels   int `json:"panels"`
	Tabs     int `json:"tabs"`
	Contents int `json:"contents"`
}

// Stats counts the tiles of each kind currently in the tree.
func (w *Workspace) Stats() Stats {
	var st Stats
	for _, t := range w.store.tiles {
		switch t.Kind {
		case KindGrid:
			st.Grids++
		case KindRow:
			st.Rows++
		case KindColumn:
			st.Columns++
		case KindPanel:
			st.Panels++
		case KindTab:
			st.Tabs++
		case KindContent:
			st.Contents++
		}
	}
	return st
}
