// Package rings turns a frequency trie into the angular layout of a sunburst.
//
// # Overview
//
// [Partition] walks a [trie.Trie] depth first and assigns every letter node
// an angular interval, expressed as fractions of the full circle:
//
//   - Size: the node's share of the circle, size(parent) * count/count(parent)
//   - Offset: where the interval starts, 0 at the top, growing clockwise
//
// Siblings are visited in ascending letter order and laid out back to back
// from the parent's offset, so each ring nests inside the one below it.
// Words ending at a node leave the remainder of that node's interval empty
// on the next ring.
//
// The result is a [Tiers] value: one slice of [Entry] per ring, where tier 0
// holds the first letters of all words.
//
//	tiers, err := rings.Partition(t)
//	for i, tier := range tiers {
//	    for _, e := range tier {
//	        fmt.Printf("ring %d: %c %.3f@%.3f\n", i+1, e.Letter, e.Size, e.Offset)
//	    }
//	}
//
// # Precision
//
// Sizes are float64 products of successive count ratios. Rounding error
// accumulates along long sibling runs and is not corrected: offsets and sizes
// agree with exact rational arithmetic to roughly 1e-12, which is far below
// anything visible in a drawing.
//
// # Statistics
//
// [Summarize] reports per-ring coverage and letter entropy, useful to see at
// which position letters are most and least predictable.
package rings
