package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/wordvis/pkg/errors"
	pkgio "github.com/matzehuels/wordvis/pkg/io"
	"github.com/matzehuels/wordvis/pkg/observability"
)

func writeWords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	return path
}

func TestBuildTrie(t *testing.T) {
	records := []pkgio.Record{{Word: "at", Count: 2}, {Word: "as", Count: 3}, {Word: "zzz", Count: 0}}

	tr, err := BuildTrie(records)
	if err != nil {
		t.Fatalf("BuildTrie() error: %v", err)
	}
	if got := tr.Root().Count(); got != 5 {
		t.Errorf("root count = %d, want 5", got)
	}
	if tr.Root().Child('z') != nil {
		t.Error("zero-count record should not create nodes")
	}
}

func TestBuildTrie_InvalidRecord(t *testing.T) {
	_, err := BuildTrie([]pkgio.Record{{Word: "ok", Count: 1}, {Word: "", Count: 1}})
	if !errors.Is(err, errors.ErrCodeInvalidRecord) {
		t.Fatalf("BuildTrie() error = %v, want %s", err, errors.ErrCodeInvalidRecord)
	}
	if !strings.Contains(err.Error(), "record 2") {
		t.Errorf("BuildTrie() error should name the record: %v", err)
	}
}

func TestExecute_SVG(t *testing.T) {
	path := writeWords(t, "at\t2\nas\t3\n")

	result, err := NewRunner(nil).Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Format != FormatSVG {
		t.Errorf("Format = %q, want svg", result.Format)
	}
	if result.Stats.Records != 2 || result.Stats.Words != 2 || result.Stats.Rings != 2 {
		t.Errorf("Stats = %+v, want 2 records, 2 words, 2 rings", result.Stats)
	}
	if result.Stats.Nodes != 3 {
		t.Errorf("Stats.Nodes = %d, want 3", result.Stats.Nodes)
	}

	svg := string(result.Artifact)
	if !strings.HasPrefix(svg, "<svg") {
		t.Error("artifact should be an SVG document")
	}
	if got := strings.Count(svg, "<path "); got != 3 {
		t.Errorf("artifact has %d paths, want 3", got)
	}
}

func TestExecute_JSONFromOutputExtension(t *testing.T) {
	path := writeWords(t, "a\t1\nb\t1\nc\t1\n")

	result, err := NewRunner(nil).Execute(context.Background(), Options{Input: path, Output: "rings.json"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Format != FormatJSON {
		t.Fatalf("Format = %q, want json", result.Format)
	}

	var out struct {
		Rings []struct {
			Depth   int `json:"depth"`
			Entries []struct {
				Letter string  `json:"letter"`
				Size   float64 `json:"size"`
				Offset float64 `json:"offset"`
			} `json:"entries"`
		} `json:"rings"`
	}
	if err := json.Unmarshal(result.Artifact, &out); err != nil {
		t.Fatalf("unmarshal artifact: %v", err)
	}
	if len(out.Rings) != 1 || len(out.Rings[0].Entries) != 3 {
		t.Fatalf("rings = %+v, want one ring of three entries", out.Rings)
	}
	if e := out.Rings[0].Entries[2]; e.Letter != "c" {
		t.Errorf("last entry letter = %q, want c", e.Letter)
	}
}

func TestExecute_NodelinkDOT(t *testing.T) {
	path := writeWords(t, "go\t2\ngopher\t1\n")

	result, err := NewRunner(nil).Execute(context.Background(), Options{
		Input:   path,
		VizType: VizTypeNodelink,
		Format:  FormatDOT,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(string(result.Artifact), `"^go"`) {
		t.Error("DOT artifact missing prefix node")
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    Options
		code    errors.Code
	}{
		{"invalid record", "at\tmany\n", Options{}, errors.ErrCodeInvalidRecord},
		{"negative count", "at\t-1\n", Options{}, errors.ErrCodeInvalidRecord},
		{"bad format", "at\t1\n", Options{Format: "gif"}, errors.ErrCodeInvalidFormat},
		{"bad type", "at\t1\n", Options{VizType: "tower"}, errors.ErrCodeInvalidVizType},
		{"unsupported combination", "at\t1\n", Options{VizType: VizTypeNodelink, Format: FormatJSON}, errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Input = writeWords(t, tt.content)
			_, err := NewRunner(nil).Execute(context.Background(), tt.opts)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Execute() code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestExecute_MissingInput(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), Options{
		Input: filepath.Join(t.TempDir(), "missing.tsv"),
	})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeIO)
	}
}

func TestExecute_Cancelled(t *testing.T) {
	path := writeWords(t, "at\t2\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewRunner(nil).Execute(ctx, Options{Input: path})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
	if result != nil {
		t.Error("Execute() should not return a result when cancelled")
	}
}

func TestExecute_Deterministic(t *testing.T) {
	path := writeWords(t, "the\t50\nthen\t7\nthere\t12\nthis\t30\na\t40\nan\t9\nand\t35\n")

	first, err := NewRunner(nil).Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for range 3 {
		again, err := NewRunner(nil).Execute(context.Background(), Options{Input: path})
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if !bytes.Equal(first.Artifact, again.Artifact) {
			t.Fatal("Execute() produced different SVG for the same input")
		}
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnParseStart(context.Context, string) {
	h.events = append(h.events, "parse")
}

func (h *recordingHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {
	h.events = append(h.events, "parsed")
}

func (h *recordingHooks) OnPartitionStart(context.Context, int) {
	h.events = append(h.events, "partition")
}

func (h *recordingHooks) OnPartitionComplete(context.Context, int, time.Duration, error) {
	h.events = append(h.events, "partitioned")
}

func (h *recordingHooks) OnRenderStart(context.Context, string, string) {
	h.events = append(h.events, "render")
}

func (h *recordingHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
	h.events = append(h.events, "rendered")
}

func TestExecute_Hooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	path := writeWords(t, "at\t2\n")
	if _, err := NewRunner(nil).Execute(context.Background(), Options{Input: path}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := "parse parsed partition partitioned render rendered"
	if got := strings.Join(hooks.events, " "); got != want {
		t.Errorf("hook events = %q, want %q", got, want)
	}
}

func TestExecute_HooksOnFailure(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	path := writeWords(t, "not a record\n")
	if _, err := NewRunner(nil).Execute(context.Background(), Options{Input: path}); err == nil {
		t.Fatal("Execute() should fail on a malformed line")
	}

	if got := strings.Join(hooks.events, " "); got != "parse parsed" {
		t.Errorf("hook events = %q, want parse stage only", got)
	}
}
