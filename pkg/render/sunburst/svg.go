package sunburst

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/matzehuels/wordvis/pkg/rings"
)

// Rendering defaults.
const (
	DefaultRingDepth     = 100.0
	DefaultMaxRings      = 12
	DefaultLetterSpacing = 10.0
	DefaultLightness     = 0.85
	DefaultLineColor     = "white"
	DefaultFontColor     = "#555555"
	DefaultFontFamily    = "Arial"
	DefaultFontSize      = "10px"
)

// Option configures [RenderSVG].
type Option func(*renderer)

type renderer struct {
	ringDepth     float64
	maxRings      int
	letterSpacing float64
	lightness     float64
	lineColor     string
	fontColor     string
	fontFamily    string
	fontSize      string
}

// WithRingDepth sets the radial thickness of each ring in pixels.
func WithRingDepth(d float64) Option { return func(r *renderer) { r.ringDepth = d } }

// WithMaxRings sets the canvas size in rings, counting the empty center.
// Deeper tiers are still drawn and get clipped at the canvas edge.
func WithMaxRings(n int) Option { return func(r *renderer) { r.maxRings = n } }

// WithLetterSpacing sets the minimum distance between two labels.
// Zero labels every segment whose anchor differs from the previous one.
func WithLetterSpacing(s float64) Option { return func(r *renderer) { r.letterSpacing = s } }

// WithLightness sets the HSL lightness of the letter fills, in [0, 1].
func WithLightness(l float64) Option { return func(r *renderer) { r.lightness = l } }

// WithLineColor sets the CSS color of the segment outlines.
func WithLineColor(c string) Option { return func(r *renderer) { r.lineColor = c } }

// WithFont sets the CSS font family, size and color of the labels.
func WithFont(family, size, color string) Option {
	return func(r *renderer) { r.fontFamily, r.fontSize, r.fontColor = family, size, color }
}

func newRenderer(opts ...Option) renderer {
	r := renderer{
		ringDepth:     DefaultRingDepth,
		maxRings:      DefaultMaxRings,
		letterSpacing: DefaultLetterSpacing,
		lightness:     DefaultLightness,
		lineColor:     DefaultLineColor,
		fontColor:     DefaultFontColor,
		fontFamily:    DefaultFontFamily,
		fontSize:      DefaultFontSize,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Capacity returns how many rings fit whole inside the circle inscribed in
// a canvas sized for maxRings. The empty center disc takes one ring's worth
// of radius. Rings past Capacity reach into the corners and are clipped.
func Capacity(maxRings int) int { return max(0, maxRings-1) }

// CanvasSize returns the side length of the square canvas.
func CanvasSize(ringDepth float64, maxRings int) float64 {
	return float64(maxRings) * ringDepth * 2
}

// RenderSVG draws tiers as a sunburst chart and returns the SVG document.
// Output is deterministic: the same tiers and options produce the same bytes.
func RenderSVG(tiers rings.Tiers, opts ...Option) []byte {
	r := newRenderer(opts...)

	size := CanvasSize(r.ringDepth, r.maxRings)
	center := Point{X: size / 2, Y: size / 2}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		size, size, size, size)

	r.renderStyles(&buf)

	buf.WriteString("  <g>\n")
	placer := labelPlacer{spacing: r.letterSpacing}
	for i, tier := range tiers {
		r.renderRing(&buf, center, i+1, tier, &placer)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) renderStyles(buf *bytes.Buffer) {
	buf.WriteString("  <style>\n")
	line := escapeXML(r.lineColor)
	for _, letter := range alphabet {
		fmt.Fprintf(buf, "    .%c{fill:%s;stroke:%s;}\n", letter, ColorFor(letter, r.lightness), line)
	}
	fmt.Fprintf(buf, "    .%s{fill:%s;stroke:%s;}\n", otherClass, ColorFor(0, r.lightness), line)
	fmt.Fprintf(buf, "    text{fill:%s;font-family:%s;font-size:%s;}\n",
		escapeXML(r.fontColor), escapeXML(r.fontFamily), escapeXML(r.fontSize))
	buf.WriteString("  </style>\n")
}

// renderRing writes all segments of a ring, then their labels, so that the
// labels sit on top of the fills.
func (r *renderer) renderRing(buf *bytes.Buffer, center Point, level int, tier []rings.Entry, placer *labelPlacer) {
	inner := r.ringDepth * float64(level)
	outer := r.ringDepth * float64(level+1)

	segments := make([]Segment, len(tier))
	for i, e := range tier {
		segments[i] = ArcPath(center, inner, outer, e.Offset*2*math.Pi, e.End()*2*math.Pi)
		fmt.Fprintf(buf, "    <path d=\"%s\" class=\"%s\"/>\n", segments[i].D(), classFor(e.Letter))
	}
	for i, e := range tier {
		if l, ok := placer.place(e.Letter, segments[i]); ok {
			fmt.Fprintf(buf, "    <text x=\"%s\" y=\"%s\">%s</text>\n", fmtNum(l.At.X), fmtNum(l.At.Y), escapeXML(l.Text))
		}
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
