package sunburst

import (
	"fmt"
	"math"
	"strings"
)

// Point is a position on the canvas. Y grows downward.
type Point struct {
	X, Y float64
}

// AngleToPoint converts polar coordinates around center to canvas
// coordinates. Angle 0 points to 12 o'clock and angles grow clockwise.
func AngleToPoint(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + math.Sin(angle)*radius,
		Y: center.Y - math.Cos(angle)*radius,
	}
}

// Segment is the outline of one annular ring segment.
type Segment struct {
	Inner, Outer float64 // radii
	Start, End   float64 // angles in radians, Start <= End

	InnerStart, InnerEnd Point
	OuterStart, OuterEnd Point

	center Point
}

// ArcPath computes the four corners of the segment between radii inner and
// outer and angles start and end.
func ArcPath(center Point, inner, outer, start, end float64) Segment {
	return Segment{
		Inner:      inner,
		Outer:      outer,
		Start:      start,
		End:        end,
		InnerStart: AngleToPoint(center, inner, start),
		InnerEnd:   AngleToPoint(center, inner, end),
		OuterStart: AngleToPoint(center, outer, start),
		OuterEnd:   AngleToPoint(center, outer, end),
		center:     center,
	}
}

// sweep returns the angular extent of the segment.
func (s Segment) sweep() float64 { return s.End - s.Start }

// fullCircle reports whether the segment closes on itself, in which case its
// start and end corners coincide.
func (s Segment) fullCircle() bool { return s.sweep() >= 2*math.Pi-1e-9 }

// D returns the SVG path data of the segment: along the inner arc clockwise,
// out along the end edge, back along the outer arc and in along the start
// edge. A full ring is drawn as two half arcs per radius since an SVG arc
// whose endpoints coincide is not rendered.
func (s Segment) D() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%s", fmtPoint(s.InnerStart))
	if s.fullCircle() {
		mid := (s.Start + s.End) / 2
		innerMid := AngleToPoint(s.center, s.Inner, mid)
		outerMid := AngleToPoint(s.center, s.Outer, mid)
		writeArc(&b, s.Inner, false, true, innerMid)
		writeArc(&b, s.Inner, false, true, s.InnerEnd)
		fmt.Fprintf(&b, " L %s", fmtPoint(s.OuterEnd))
		writeArc(&b, s.Outer, false, false, outerMid)
		writeArc(&b, s.Outer, false, false, s.OuterStart)
	} else {
		large := s.sweep() > math.Pi
		writeArc(&b, s.Inner, large, true, s.InnerEnd)
		fmt.Fprintf(&b, " L %s", fmtPoint(s.OuterEnd))
		writeArc(&b, s.Outer, large, false, s.OuterStart)
	}
	b.WriteString(" Z")
	return b.String()
}

func writeArc(b *strings.Builder, r float64, large, clockwise bool, to Point) {
	fmt.Fprintf(b, " A %s %s, 0, %d, %d, %s", fmtNum(r), fmtNum(r), flag(large), flag(clockwise), fmtPoint(to))
}

func flag(v bool) int {
	if v {
		return 1
	}
	return 0
}

func fmtPoint(p Point) string { return fmtNum(p.X) + " " + fmtNum(p.Y) }

// fmtNum formats a coordinate with two decimals, folding -0.00 into 0.00.
func fmtNum(v float64) string {
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}
