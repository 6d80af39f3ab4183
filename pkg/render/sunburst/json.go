package sunburst

import (
	"encoding/json"

	"github.com/matzehuels/wordvis/pkg/rings"
)

type jsonOutput struct {
	Rings []jsonRing `json:"rings"`
}

type jsonRing struct {
	rings.RingStats
	Entries []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Letter string  `json:"letter"`
	Size   float64 `json:"size"`
	Offset float64 `json:"offset"`
}

// RenderJSON exports tiers with per-ring statistics as indented JSON.
//
//	{"rings": [{"depth": 1, "arcs": 1, "coverage": 1, "entropy": 0,
//	            "entries": [{"letter": "a", "size": 1, "offset": 0}]}]}
//
// Sizes and offsets are written at full float64 precision.
func RenderJSON(tiers rings.Tiers) ([]byte, error) {
	out := jsonOutput{Rings: make([]jsonRing, 0, len(tiers))}
	for i, rs := range rings.Summarize(tiers) {
		ring := jsonRing{RingStats: rs, Entries: make([]jsonEntry, len(tiers[i]))}
		for j, e := range tiers[i] {
			ring.Entries[j] = jsonEntry{Letter: string(e.Letter), Size: e.Size, Offset: e.Offset}
		}
		out.Rings = append(out.Rings, ring)
	}
	return json.MarshalIndent(out, "", "  ")
}
