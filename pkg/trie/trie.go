package trie

import (
	"maps"
	"slices"

	"github.com/matzehuels/wordvis/pkg/errors"
)

const (
	// StartLabel is the display label of the root sentinel.
	StartLabel = '^'
	// EndLabel is the display label of a terminal sentinel.
	EndLabel = '$'
)

// Kind distinguishes the three node variants of the trie.
type Kind int

const (
	// KindStart is the synthetic root. There is exactly one per trie.
	KindStart Kind = iota
	// KindLetter is a letter at a given depth.
	KindLetter
	// KindEnd marks the end of a word. END nodes have no children.
	KindEnd
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindLetter:
		return "letter"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Node is one vertex of the trie.
//
// The zero value is not usable; nodes are created by [New] and [Trie.Add].
type Node struct {
	kind     Kind
	letter   rune
	count    uint64
	children map[rune]*Node // letter children only
	end      *Node          // terminal child, nil if no word ends here
}

func newNode(kind Kind, letter rune) *Node {
	n := &Node{kind: kind, letter: letter}
	if kind != KindEnd {
		n.children = make(map[rune]*Node)
	}
	return n
}

// Kind returns the variant of the node.
func (n *Node) Kind() Kind { return n.kind }

// Letter returns the node's letter, or [StartLabel]/[EndLabel] for sentinels.
func (n *Node) Letter() rune { return n.letter }

// Count returns the accumulated count of the node.
func (n *Node) Count() uint64 { return n.count }

// IsEnd reports whether the node is a terminal sentinel.
func (n *Node) IsEnd() bool { return n.kind == KindEnd }

// Child returns the letter child for r, or nil.
func (n *Node) Child(r rune) *Node { return n.children[r] }

// End returns the terminal child, or nil if no word ends at n.
func (n *Node) End() *Node { return n.end }

// HasChildren reports whether n has any letter or terminal child.
func (n *Node) HasChildren() bool { return len(n.children) > 0 || n.end != nil }

// Children returns the letter children of n sorted ascending by letter.
// The terminal child is not included; see [Node.End].
func (n *Node) Children() []*Node {
	keys := slices.Sorted(maps.Keys(n.children))
	out := make([]*Node, len(keys))
	for i, k := range keys {
		out[i] = n.children[k]
	}
	return out
}

// Trie is a frequency-weighted prefix tree.
type Trie struct {
	root *Node
}

// New returns an empty trie whose root has a count of zero.
func New() *Trie {
	return &Trie{root: newNode(KindStart, StartLabel)}
}

// Root returns the START sentinel.
func (t *Trie) Root() *Node { return t.root }

// Add inserts word with the given count.
//
// The count is added to the root and to every node along the word's path,
// creating nodes as needed. A terminal child is created under the last letter
// the first time the word is added and keeps a count of 1 afterwards.
//
// Add returns an INVALID_RECORD error for an empty word or a negative count.
// A count of zero is a no-op: nothing is created and nil is returned.
// Words are used as given; callers normalize case beforehand.
func (t *Trie) Add(word string, count int64) error {
	if word == "" {
		return errors.New(errors.ErrCodeInvalidRecord, "word cannot be empty")
	}
	if count < 0 {
		return errors.New(errors.ErrCodeInvalidRecord, "negative count %d for %q", count, word)
	}
	if count == 0 {
		return nil
	}

	c := uint64(count)
	node := t.root
	node.count += c
	for _, r := range word {
		child, ok := node.children[r]
		if !ok {
			child = newNode(KindLetter, r)
			node.children[r] = child
		}
		child.count += c
		node = child
	}

	if node.end == nil {
		node.end = newNode(KindEnd, EndLabel)
		node.end.count = 1
	}
	return nil
}

// Stats summarizes the shape of a trie.
type Stats struct {
	Nodes    int // letter nodes
	Words    int // distinct words (terminal nodes)
	MaxDepth int // length of the longest word, in letters
}

// Stats walks the trie and returns its shape.
func (t *Trie) Stats() Stats {
	var s Stats
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.kind == KindLetter {
			s.Nodes++
			s.MaxDepth = max(s.MaxDepth, f.depth)
		}
		if f.node.end != nil {
			s.Words++
		}
		for _, c := range f.node.children {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}
	return s
}
