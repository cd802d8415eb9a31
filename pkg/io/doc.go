// Package io provides JSON import and export for workspace snapshots.
//
// # Overview
//
// This package serializes the layout engine's snapshots to and from
// JSON. The format is designed for:
//
//   - Persisting a workspace across sessions
//   - Integration with hosts that produce or consume layout data
//   - Round-trip preservation: export, re-import, and keep working with
//     an identical tree
//
// # JSON Format
//
// A snapshot is a single object holding the tile map plus the root and
// tracker ids:
//
//	{
//	  "tiles": {
//	    "grid-1":  {"id": "grid-1", "kind": "grid", "rows": ["row-1"]},
//	    "row-1":   {"id": "row-1", "kind": "row", "parent": "grid-1",
//	                "height": {"value": 100, "unit": "percent"},
//	                "columns": ["col-1"]}
//	  },
//	  "root": "grid-1",
//	  "activePanel": "panel-1",
//	  "focusedTab": "tab-1"
//	}
//
// Each tile carries only the fields relevant to its kind; the rest are
// omitted. Sizes are value/unit pairs so pixel and percent dimensions
// survive the round trip.
//
// # Import
//
// Use [ImportJSON] to read a workspace from a file path, or [ReadJSON]
// to read from any io.Reader:
//
//	w, err := io.ImportJSON("workspace.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions hydrate the snapshot through the engine's validation,
// so corrupt trees (orphans, empty containers, broken trackers) are
// refused with an error describing the first violation.
//
// # Export
//
// Use [ExportJSON] to write a workspace to a file, or [WriteJSON] to
// write to any io.Writer:
//
//	err := io.ExportJSON(w, "workspace.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export is a deep copy; the workspace can keep mutating while the
// caller holds the bytes.
//
// # Concurrency
//
// All functions are safe to call concurrently with other readers of the
// same workspace, but not with concurrent mutations. [ReadJSON] and
// [ImportJSON] return independent workspaces that can be used and
// modified freely after import.
package io
