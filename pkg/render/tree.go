package render

import (
	"fmt"
	"strings"

	"github.com/docktile/docktile/pkg/tile"
)

// Tree renders a snapshot's tile hierarchy as an ASCII tree. Rows and
// columns carry their sizes, panels list their tabs with the active one
// marked, and content tiles show their bound component. An empty
// workspace renders as "(empty)".
func Tree(snap tile.Snapshot) string {
	if snap.Root == "" {
		return "(empty)\n"
	}
	var b strings.Builder
	root, ok := snap.Tiles[snap.Root]
	if !ok {
		return "(empty)\n"
	}
	b.WriteString(label(snap, root))
	b.WriteByte('\n')
	writeChildren(&b, snap, root, "")
	return b.String()
}

// writeChildren walks a tile's children in sequence order with the
// usual box-drawing branch prefixes.
func writeChildren(b *strings.Builder, snap tile.Snapshot, t tile.Tile, prefix string) {
	kids := childIDs(t)
	for i, id := range kids {
		child, ok := snap.Tiles[id]
		if !ok {
			continue
		}
		branch, next := "├── ", prefix+"│   "
		if i == len(kids)-1 {
			branch, next = "└── ", prefix+"    "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(label(snap, child))
		b.WriteByte('\n')
		writeChildren(b, snap, child, next)
	}
}

// childIDs returns a tile's children in render order.
func childIDs(t tile.Tile) []string {
	switch t.Kind {
	case tile.KindGrid:
		return t.Rows
	case tile.KindRow:
		return t.Columns
	case tile.KindColumn:
		if t.Child == "" {
			return nil
		}
		return []string{t.Child}
	case tile.KindPanel:
		return t.Tabs
	case tile.KindTab:
		if t.Content == "" {
			return nil
		}
		return []string{t.Content}
	}
	return nil
}

func label(snap tile.Snapshot, t tile.Tile) string {
	switch t.Kind {
	case tile.KindGrid:
		if t.Parent == "" {
			return "grid (root)"
		}
		return "grid"
	case tile.KindRow:
		return "row " + sizeLabel(t.Height)
	case tile.KindColumn:
		return "column " + sizeLabel(t.Width)
	case tile.KindPanel:
		return fmt.Sprintf("panel (%d tabs)", len(t.Tabs))
	case tile.KindTab:
		name := t.Name
		if name == "" {
			name = t.ID
		}
		if parent, ok := snap.Tiles[t.Parent]; ok && parent.ActiveTab == t.ID {
			return "tab " + name + " (active)"
		}
		return "tab " + name
	case tile.KindContent:
		if t.ComponentID == "" {
			return "content"
		}
		return "content [" + t.ComponentID + "]"
	}
	return string(t.Kind)
}

func sizeLabel(s tile.Size) string {
	switch s.Unit {
	case tile.UnitPercent:
		return trimFloat(s.Value) + "%"
	case tile.UnitPixel:
		return trimFloat(s.Value) + "px"
	}
	return "auto"
}

// trimFloat formats a size value without trailing zeros.
func trimFloat(v float64) string {
	out := fmt.Sprintf("%.2f", v)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}
