package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordvis/pkg/errors"
	"github.com/matzehuels/wordvis/pkg/pipeline"
	"github.com/matzehuels/wordvis/pkg/render/sunburst"
	"github.com/matzehuels/wordvis/pkg/rings"
)

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.svg")

	if err := writeOutput(path, []byte("first")); err != nil {
		t.Fatalf("writeOutput() error: %v", err)
	}
	if err := writeOutput(path, []byte("second")); err != nil {
		t.Fatalf("writeOutput() overwrite error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
}

func TestWriteOutput_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.svg")

	err := writeOutput(path, []byte("x"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("writeOutput() error = %v, want %s", err, errors.ErrCodeIO)
	}
}

func TestChartFlagsOptions(t *testing.T) {
	var f chartFlags
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd)
	if err := cmd.Flags().Parse([]string{"--max-rings", "5", "--lightness", "0.5", "--letter-spacing", "0"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	opts, err := f.options(cmd.Flags(), "in.tsv", "out.png")
	if err != nil {
		t.Fatalf("options() error: %v", err)
	}

	if opts.Input != "in.tsv" || opts.Output != "out.png" {
		t.Errorf("paths = %q, %q", opts.Input, opts.Output)
	}
	if opts.MaxRings != 5 || opts.Lightness != 0.5 || opts.LetterSpacing != 0 {
		t.Errorf("set flags not applied: max rings %d, lightness %g, spacing %g",
			opts.MaxRings, opts.Lightness, opts.LetterSpacing)
	}
	// Unset flags keep the defaults; the format is left for the output extension.
	if opts.RingDepth != sunburst.DefaultRingDepth || opts.Format != "" || opts.VizType != pipeline.DefaultVizType {
		t.Errorf("unset flags should keep defaults: %+v", opts)
	}
}

func TestRingTable(t *testing.T) {
	table := ringTable([]rings.RingStats{
		{Depth: 1, Arcs: 1, Coverage: 1, Entropy: 0},
		{Depth: 2, Arcs: 2, Coverage: 0.5, Entropy: 1.5},
	})

	for _, want := range []string{"Ring", "Entropy", "0.500", "1.500"} {
		if !strings.Contains(table, want) {
			t.Errorf("ringTable() missing %q:\n%s", want, table)
		}
	}
}
