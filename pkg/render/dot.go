package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/docktile/docktile/pkg/tile"
)

// Options configures DOT rendering.
type Options struct {
	// Detailed includes tile ids and component bindings in node labels.
	// When false, only the kind and size/name summary is shown.
	Detailed bool
}

// fillColors gives each tile kind a distinct fill so the containment
// levels read at a glance.
var fillColors = map[tile.Kind]string{
	tile.KindGrid:    "lightsteelblue",
	tile.KindRow:     "lightyellow",
	tile.KindColumn:  "honeydew",
	tile.KindPanel:   "mistyrose",
	tile.KindTab:     "white",
	tile.KindContent: "lightgrey",
}

// ToDOT converts a snapshot to Graphviz DOT format. The tree is walked
// from the root in sequence order, so the output is deterministic for a
// given snapshot. The resulting DOT string can be rendered with
// [RenderSVG].
func ToDOT(snap tile.Snapshot, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph workspace {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	if snap.Root != "" {
		writeDOT(&buf, snap, snap.Root, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOT emits the node line for id and an edge per child, recursing
// depth-first.
func writeDOT(buf *bytes.Buffer, snap tile.Snapshot, id string, opts Options) {
	t, ok := snap.Tiles[id]
	if !ok {
		return
	}
	fmt.Fprintf(buf, "  %q [label=%q, fillcolor=%s];\n", id, dotLabel(snap, t, opts), fillColors[t.Kind])
	for _, cid := range childIDs(t) {
		fmt.Fprintf(buf, "  %q -> %q;\n", id, cid)
		writeDOT(buf, snap, cid, opts)
	}
}

func dotLabel(snap tile.Snapshot, t tile.Tile, opts Options) string {
	base := label(snap, t)
	if !opts.Detailed {
		return base
	}
	parts := []string{base, t.ID}
	if t.Kind == tile.KindContent && t.ComponentID != "" {
		parts = append(parts, "component: "+t.ComponentID)
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz
// engine. Returns the SVG bytes ready for display.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag to a zero-origin viewBox
// with explicit dimensions, which embeds cleanly in host pages.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
