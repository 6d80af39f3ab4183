package rings

import (
	"github.com/matzehuels/wordvis/pkg/errors"
	"github.com/matzehuels/wordvis/pkg/trie"
)

// Entry is one letter's arc on a ring.
type Entry struct {
	Letter rune    // Letter drawn on the arc
	Size   float64 // Fraction of the full circle, in (0, 1]
	Offset float64 // Start of the arc as a fraction of the circle, in [0, 1)
}

// End returns Offset+Size, the fraction of the circle where the arc stops.
func (e Entry) End() float64 { return e.Offset + e.Size }

// Tiers holds the entries of every ring. Tiers[0] is the innermost ring
// (first letters); each tier is ordered by ascending offset.
type Tiers [][]Entry

// Depth returns the number of rings.
func (t Tiers) Depth() int { return len(t) }

// Len returns the total number of entries across all rings.
func (t Tiers) Len() int {
	n := 0
	for _, tier := range t {
		n += len(tier)
	}
	return n
}

// Partition computes the angular layout of every letter node in t.
//
// The root spans the whole circle. Each letter child receives
// size*child.Count/node.Count of its parent's interval, starting where the
// previous sibling ended. Entries are recorded once a node's subtree has been
// processed; the root and terminal markers are never recorded.
//
// An empty trie yields no tiers. A node that has children but a zero count
// cannot be split proportionally; Partition returns an INVARIANT_VIOLATION
// error for it instead of producing NaN sizes.
func Partition(t *trie.Trie) (Tiers, error) {
	return partition(t.Root(), 0, 1.0, 0.0, nil)
}

// treeNode is the part of [trie.Node] the layout reads.
type treeNode[N any] interface {
	Kind() trie.Kind
	Letter() rune
	Count() uint64
	Children() []N
}

// partition lays out n's subtree and returns tiers extended with its entries.
// depth is n's depth in the trie; the root is depth 0.
func partition[N treeNode[N]](n N, depth int, size, offset float64, tiers Tiers) (Tiers, error) {
	children := n.Children()
	if len(children) > 0 && n.Count() == 0 {
		return nil, errors.New(errors.ErrCodeInvariantViolation,
			"node %q at depth %d has %d children but zero count", n.Letter(), depth, len(children))
	}

	childOffset := offset
	for _, child := range children {
		childSize := size * float64(child.Count()) / float64(n.Count())

		var err error
		tiers, err = partition(child, depth+1, childSize, childOffset, tiers)
		if err != nil {
			return nil, err
		}
		childOffset += childSize
	}

	switch n.Kind() {
	case trie.KindLetter:
		tiers = record(tiers, depth-1, Entry{Letter: n.Letter(), Size: size, Offset: offset})
	case trie.KindStart, trie.KindEnd:
		// sentinels occupy no arc
	}
	return tiers, nil
}

// record appends e to tier i, growing tiers as needed.
func record(tiers Tiers, i int, e Entry) Tiers {
	for len(tiers) <= i {
		tiers = append(tiers, nil)
	}
	tiers[i] = append(tiers[i], e)
	return tiers
}
