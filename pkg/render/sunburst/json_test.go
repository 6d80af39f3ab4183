package sunburst

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/wordvis/pkg/rings"
)

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(twoWords)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if len(out.Rings) != 2 {
		t.Fatalf("Rings count = %d, want 2", len(out.Rings))
	}
	r2 := out.Rings[1]
	if r2.Depth != 2 || r2.Arcs != 2 {
		t.Errorf("ring 2 = depth %d arcs %d, want depth 2 arcs 2", r2.Depth, r2.Arcs)
	}
	if len(r2.Entries) != 2 || r2.Entries[1].Letter != "t" || r2.Entries[1].Offset != 0.6 {
		t.Errorf("ring 2 entries = %+v", r2.Entries)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(rings.Tiers{})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	want := "{\n  \"rings\": []\n}"
	if string(data) != want {
		t.Errorf("RenderJSON() = %s, want %s", data, want)
	}
}
