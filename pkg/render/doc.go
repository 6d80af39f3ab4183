// Package render provides visualization rendering for word frequency charts.
//
// # Overview
//
// This package contains the renderers that turn a partitioned trie into an
// image. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Sunburst charts (in [sunburst] subpackage)
//   - Node-link diagrams of the trie (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sunburst.RenderSVG(tiers)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Sunburst Charts
//
// The [sunburst] subpackage draws one ring per letter position, each ring
// split into arcs sized by how often each letter follows the prefix below it.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the top of the trie as a directed tree
// using Graphviz, with each node labelled by its letter and count.
//
//	dot := nodelink.ToDOT(t, nodelink.Options{MaxDepth: 2})
//	svg, err := nodelink.RenderSVG(dot)
//
// [sunburst]: github.com/matzehuels/wordvis/pkg/render/sunburst
// [nodelink]: github.com/matzehuels/wordvis/pkg/render/nodelink
package render
