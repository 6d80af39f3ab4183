package sunburst

import (
	"math"
	"strings"
)

// Label offsets that roughly center a single glyph on its anchor.
const (
	labelNudgeX = -4
	labelNudgeY = 5
)

// Label is a text label positioned on the canvas.
type Label struct {
	Text string
	At   Point
}

// labelPlacer suppresses labels that would crowd the previously placed one.
// Its state carries over from ring to ring.
type labelPlacer struct {
	spacing float64
	last    Point
}

// place returns the label for a segment of letter, and false if it falls
// within spacing of the last placed label.
func (p *labelPlacer) place(letter rune, s Segment) (Label, bool) {
	at := AngleToPoint(s.center, (s.Inner+s.Outer)/2, (s.Start+s.End)/2)
	at.X += labelNudgeX
	at.Y += labelNudgeY

	if math.Hypot(at.X-p.last.X, at.Y-p.last.Y) <= p.spacing {
		return Label{}, false
	}
	p.last = at
	return Label{Text: strings.ToUpper(string(letter)), At: at}, true
}
