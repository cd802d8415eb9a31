package tile

import "errors"

var (
	// ErrTileNotFound is returned when a referenced tile id does not
	// exist in the store.
	ErrTileNotFound = errors.New("tile not found")

	// ErrWrongTileType is returned when a tile exists but is not the
	// expected kind (e.g. a Panel was expected, a Row was found).
	ErrWrongTileType = errors.New("wrong tile type")

	// ErrInvalidParent is returned when an operation would attach a
	// child under a parent kind that violates the containment rules
	// (e.g. adding a Row to anything other than a Grid).
	ErrInvalidParent = errors.New("invalid parent")

	// ErrAlreadyHasChild is returned when an operation would give a
	// Column a second child without removing the first, or create a
	// second root grid.
	ErrAlreadyHasChild = errors.New("already has a child")

	// ErrTabNotInPanel is returned when a move or reorder references a
	// tab that is not present in the stated panel's tab sequence.
	ErrTabNotInPanel = errors.New("tab not in panel")

	// ErrDegenerateSplit is returned by [Workspace.SplitPanel] when the
	// split would use the target panel's only tab against itself, which
	// would just recreate the same panel.
	ErrDegenerateSplit = errors.New("degenerate split")

	// ErrFocusNotActive is returned by [Workspace.SetFocusedActiveTab]
	// when the tab is not currently the active tab of its panel.
	ErrFocusNotActive = errors.New("tab is not its panel's active tab")

	// ErrInvalidDirection is returned by [Workspace.SplitPanel] for a
	// direction other than top, bottom, left or right.
	ErrInvalidDirection = errors.New("invalid split direction")

	// ErrEmptyContainer is returned by [Workspace.Validate] for a panel
	// with no tabs, a column with no live child, a row with no columns,
	// or a non-root grid with no rows. Cleanup removes such containers;
	// finding one means a mutation skipped its cleanup pass or a
	// snapshot was corrupted.
	ErrEmptyContainer = errors.New("empty container")

	// ErrRedundantGrid is returned by [Workspace.Validate] for a nested
	// grid holding exactly one row with exactly one column - degenerate
	// nesting that cleanup collapses into the parent column.
	ErrRedundantGrid = errors.New("redundant single-cell grid")

	// ErrOrphanTile is returned by [Workspace.Validate] for a tile
	// whose parent does not list it as a child, or a non-root tile with
	// no parent at all.
	ErrOrphanTile = errors.New("orphan tile")
)
