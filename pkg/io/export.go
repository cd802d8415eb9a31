package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/docktile/docktile/pkg/tile"
)

// WriteJSON encodes a workspace snapshot as indented JSON and writes it
// to w. The output can be re-imported with [ReadJSON] for round-trip
// processing.
func WriteJSON(ws *tile.Workspace, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ws.Snapshot()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a workspace to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(ws *tile.Workspace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(ws, f)
}
