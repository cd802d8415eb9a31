// Package render turns workspace snapshots into visual output.
//
// Two families of output are supported:
//
//   - [Tree] draws the tile hierarchy as an ASCII tree for terminals,
//     with sizes, tab lists and active markers inline.
//   - [ToDOT] emits a Graphviz DOT description of the tree, and
//     [RenderSVG] rasterizes it to SVG via the embedded Graphviz
//     engine. No external graphviz installation is needed.
//
// All functions consume a [tile.Snapshot], so they can run on live
// workspaces, persisted layouts, or anything in between, and never
// mutate what they render.
//
//	dot := render.ToDOT(w.Snapshot(), render.Options{})
//	svg, err := render.RenderSVG(dot)
package render
