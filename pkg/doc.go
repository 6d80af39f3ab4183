// Package pkg provides the libraries behind wordvis word frequency charts.
//
// # Overview
//
// wordvis turns a list of (word, count) pairs into a sunburst chart: the
// first ring is divided among first letters in proportion to how many words
// start with them, and every further ring divides each arc among the letters
// that follow that prefix.
//
// # Architecture
//
// The data flow through wordvis:
//
//	WORD<TAB>COUNT lines
//	         ↓
//	    [io] package (read and normalize records)
//	         ↓
//	    [trie] package (aggregate counts letter by letter)
//	         ↓
//	    [rings] package (partition counts into arcs per depth)
//	         ↓
//	    [render/sunburst] package (draw rings)
//	         ↓
//	    SVG/JSON, or PDF/PNG via [render]
//
// # Quick Start
//
//	t := trie.New()
//	_ = t.Add("at", 2)
//	_ = t.Add("as", 3)
//
//	tiers, _ := rings.Partition(t)
//	svg := sunburst.RenderSVG(tiers, sunburst.WithMaxRings(6))
//
// # Main Packages
//
// [trie] - Frequency-weighted prefix tree with start, letter and end nodes.
//
// [rings] - Depth-first partition of a trie into proportional arcs, plus
// per-ring statistics (coverage, letter entropy).
//
// [render/sunburst] - SVG and JSON output of the ring tiers.
//
// [render/nodelink] - Graphviz diagram of the top levels of the trie.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// [io] - Word list reader with Unicode normalization.
//
// [pipeline] - Parse → partition → render orchestration used by the CLI.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Optional hooks around pipeline stages.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//
// [trie]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/trie
// [rings]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/rings
// [render/sunburst]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/render/sunburst
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordvis/pkg/observability
package pkg
