package sunburst

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	alphabet   = "abcdefghijklmnopqrstuvwxyz"
	otherClass = "other"
)

// ColorFor returns the fill color of a letter as "#rrggbb".
// Letters a–z are spread evenly around the hue circle, starting at red for
// 'a', at full saturation and the given lightness. Any other letter is grey
// at the same lightness.
func ColorFor(letter rune, lightness float64) string {
	if letter < 'a' || letter > 'z' {
		return colorful.Hsl(0, 0, lightness).Hex()
	}
	hue := float64(letter-'a') / float64(len(alphabet)) * 360
	return colorful.Hsl(hue, 1, lightness).Hex()
}

// classFor returns the CSS class used for a letter's segments.
func classFor(letter rune) string {
	if letter < 'a' || letter > 'z' {
		return otherClass
	}
	return string(letter)
}
