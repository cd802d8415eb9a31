// Package tile implements the docktile layout core: a typed tree of
// layout tiles (grids, rows, columns, panels, tabs, content leaves)
// stored as a flat id-keyed map, together with the mutation operations
// and invariant maintenance that keep the tree consistent.
//
// # Data Model
//
// A layout is a tree of six tile kinds with strict containment rules:
//
//   - Grid: ordered stack of Rows. The root of a workspace, or nested
//     inside a Column.
//   - Row: horizontal strip of Columns, with a proportional or pixel
//     Height.
//   - Column: vertical slot holding exactly one child (Panel, nested
//     Grid, or direct Content), with a Width.
//   - Panel: tab-bar container holding an ordered sequence of Tabs and
//     an active-tab pointer.
//   - Tab: a named wrapper around one Content leaf.
//   - Content: leaf carrying a component id string and an opaque
//     property bag.
//
// The tree is stored flat: every tile is addressed by id, parents keep
// ordered child-id sequences, and children keep a parent back-reference.
// Both directions must always agree; [Workspace.Validate] checks this
// along with the other structural invariants.
//
// # Workspace
//
// A [Workspace] owns one tree: its [Store], the viewport basis used for
// mixed-unit size math, the active-panel/focused-tab trackers, and the
// subscriber list. Workspaces are independent instances - nothing is
// process-wide, and multiple workspaces (e.g. saved layouts) coexist by
// construction.
//
// All mutations go through Workspace methods (AddGrid, AddRow, AddColumn,
// AddPanel, AddTab, RemoveTile, MoveTab, SplitPanel, SetComponent).
// Each operation validates before mutating: on a validation failure the
// tree is untouched and a sentinel error from this package is returned.
// Mutations that can empty a container (RemoveTile, MoveTab, SplitPanel)
// finish with a bottom-up cleanup pass that removes empty panels,
// columns, rows and grids, redistributes freed size to the remaining
// siblings, and collapses redundant single-cell grid nesting.
//
// # Concurrency
//
// A Workspace is not safe for concurrent use. Every mutation runs to
// completion synchronously; subscribers are notified after the tree has
// settled, never mid-mutation. Callers that share a workspace across
// goroutines must synchronize externally (see the server package for a
// mutex-guarded example).
//
// # Subscriptions
//
// [Workspace.Subscribe] registers a callback that receives a deep
// [Snapshot] after each settled mutation, in subscription order.
// [Workspace.SubscribeDebounced] coalesces bursts down to one delivery
// per interval and fires once immediately with the current state.
package tile
