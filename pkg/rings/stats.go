package rings

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RingStats describes the letter distribution of one ring.
type RingStats struct {
	Depth    int     `json:"depth"`    // 1 for the innermost ring
	Arcs     int     `json:"arcs"`     // number of entries on the ring
	Coverage float64 `json:"coverage"` // fraction of the circle covered by arcs
	Entropy  float64 `json:"entropy"`  // Shannon entropy of arc sizes, in bits
}

// Summarize computes [RingStats] for every ring of t.
//
// Coverage is below 1 on rings where some words have already ended. Entropy
// is computed over the arc sizes normalized by coverage, so it measures how
// evenly the letters that do continue are spread.
func Summarize(t Tiers) []RingStats {
	out := make([]RingStats, 0, len(t))
	for i, tier := range t {
		sizes := make([]float64, len(tier))
		for j, e := range tier {
			sizes[j] = e.Size
		}

		rs := RingStats{Depth: i + 1, Arcs: len(tier)}
		rs.Coverage = floats.Sum(sizes)
		if rs.Coverage > 0 {
			p := make([]float64, len(sizes))
			floats.ScaleTo(p, 1/rs.Coverage, sizes)
			// stat.Entropy yields -0 for a single arc
			rs.Entropy = math.Abs(stat.Entropy(p)) / math.Ln2
		}
		out = append(out, rs)
	}
	return out
}
