package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/docktile/docktile/pkg/tile"
)

// ReadJSON decodes a JSON snapshot from r and hydrates it into a
// workspace.
//
// The input must be a snapshot object as produced by [WriteJSON]. A
// snapshot without a "root" field is accepted when exactly one
// parentless grid identifies the root.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - The tree violates a structural invariant (orphan tiles, empty
//     containers, redundant grid nesting)
//   - A tracker references a missing tile or a non-active tab
//
// Use errors.Is to check for the specific tile sentinel. The returned
// workspace is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tile.Workspace, error) {
	var snap tile.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	w, err := tile.Hydrate(snap)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ImportJSON reads a JSON file at path and returns the hydrated
// workspace.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes
// the file. If the file cannot be opened, or if decoding fails,
// ImportJSON returns an error describing the failure. The error wraps
// the underlying cause with the file path for context.
//
// ImportJSON returns the same validation errors as [ReadJSON] for
// malformed or corrupt snapshots.
func ImportJSON(path string) (*tile.Workspace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	w, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return w, nil
}
