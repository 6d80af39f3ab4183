// Package trie builds the frequency-weighted prefix tree behind a word chart.
//
// # Overview
//
// A [Trie] aggregates (word, count) records letter by letter. Every node
// carries the total count of all words whose prefix ends at that node, so a
// node's share of its parent's count is the fraction of the parent's words
// that continue with that letter.
//
//	t := trie.New()
//	_ = t.Add("at", 2)
//	_ = t.Add("as", 3)
//	t.Root().Count()                 // 5
//	t.Root().Child('a').Count()      // 5
//	t.Root().Child('a').Child('s')   // count 3
//
// # Node Kinds
//
// Nodes are a tagged variant distinguished by [Kind]:
//
//   - [KindStart]: the root sentinel; its count is the sum of all records
//   - [KindLetter]: one letter at one depth
//   - [KindEnd]: marks that a word terminates at its parent
//
// An END node always has a count of exactly 1, no matter how many times or
// with which frequency its word was added. The word's frequency is carried by
// the ancestors; the END node only records that the word exists.
//
// # Determinism
//
// [Node.Children] returns letter children sorted by rune, so traversals see
// the same order on every run regardless of map iteration order.
//
// The trie is built once and is read-only afterwards. It has no delete or
// update operations and is not safe for concurrent mutation.
package trie
