package pipeline

import (
	"context"
	"fmt"

	pkgio "github.com/matzehuels/wordvis/pkg/io"
	"github.com/matzehuels/wordvis/pkg/trie"
)

// Parse reads the word file named by opts.Input.
func Parse(ctx context.Context, opts Options) ([]pkgio.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	return pkgio.ImportWords(opts.Input)
}

// BuildTrie aggregates records into a frequency trie. Records with a zero
// count contribute nothing.
func BuildTrie(records []pkgio.Record) (*trie.Trie, error) {
	t := trie.New()
	for i, rec := range records {
		if err := t.Add(rec.Word, rec.Count); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i+1, rec.Word, err)
		}
	}
	return t, nil
}
