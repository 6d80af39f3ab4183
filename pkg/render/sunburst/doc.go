// Package sunburst renders partitioned rings as a sunburst chart.
//
// # Overview
//
// The renderer takes [rings.Tiers] and draws every tier as a ring of
// annular segments around the center of a square canvas. Ring i (tier
// index i) spans radii RingDepth*(i+1) to RingDepth*(i+2); the innermost
// disc is left empty. Angles start at 12 o'clock and grow clockwise, so an
// entry covers angles Offset*2π to (Offset+Size)*2π.
//
//	svg := sunburst.RenderSVG(tiers,
//	    sunburst.WithRingDepth(100),
//	    sunburst.WithMaxRings(12),
//	)
//
// # Canvas
//
// The canvas is MaxRings*RingDepth*2 pixels square. Every tier is drawn.
// Rings past [Capacity] reach beyond the inscribed circle and are clipped
// at the canvas edge, so only their arcs near the corners remain visible.
//
// # Colors and Labels
//
// Each letter a–z gets a CSS class whose fill is a fixed hue rotation across
// the alphabet at constant lightness ([ColorFor]). Letters outside a–z share
// the grey "other" class.
//
// Every segment gets an upper-case label at its midpoint unless the previous
// label was placed within LetterSpacing pixels, which keeps thin slivers from
// piling text on top of each other. Lower LetterSpacing values put more
// letters on the chart.
//
// # JSON Output
//
// [RenderJSON] exports the tiers and per-ring statistics for external tools.
package sunburst
