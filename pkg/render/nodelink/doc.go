// Package nodelink renders the top levels of a word trie as a node-link diagram.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// each trie node appears as a circle labelled with its letter and count. It
// is an alternative to the sunburst chart when the exact counts behind the
// first few letters matter more than the proportions.
//
// # Usage
//
// Convert a trie to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{MaxDepth: 2})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - MaxDepth: deepest letter level drawn (default [DefaultMaxDepth])
//   - Lightness: fill lightness, shared with the sunburst palette
//
// # DOT Format
//
// Node IDs are the prefixes they spell, so "^ab" is the node reached by
// the letters a and b. Word endings get the ID of their prefix followed by
// "$" and are drawn as small dark points.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
