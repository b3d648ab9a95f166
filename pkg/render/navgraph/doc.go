// Package navgraph renders the directional navigation of a laid-out menu
// as a Graphviz graph.
//
// # Overview
//
// Every widget becomes a box pinned at its laid-out position; every
// directional neighbour becomes an edge labelled L, R, U or D. The result
// shows at a glance where the arrow keys lead from each widget, including
// dead ends and asymmetric moves.
//
// # Usage
//
//	doc := scene.Export(m)
//	dot := navgraph.ToDOT(doc, navgraph.Options{})
//	svg, err := navgraph.RenderSVG(ctx, dot)
//
// # DOT Format
//
// Positions are given in points with inputscale=72 and pinned with "!", so
// the neato engine keeps the menu geometry instead of computing its own.
// Inactive widgets are dashed and the selected widget is filled.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package navgraph
