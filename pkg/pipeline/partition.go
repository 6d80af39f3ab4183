package pipeline

import (
	"github.com/matzehuels/wordvis/pkg/rings"
	"github.com/matzehuels/wordvis/pkg/trie"
)

// Partition computes the ring layout of a trie: one tier of proportional
// arcs per letter position.
func Partition(t *trie.Trie) (rings.Tiers, error) {
	return rings.Partition(t)
}
