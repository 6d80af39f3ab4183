package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/wordvis/pkg/errors"
	"github.com/matzehuels/wordvis/pkg/render/sunburst"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordvis.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
format = "json"
type = "sunburst"
max_rings = 8
ring_depth = 60.0
letter_spacing = 12.5
lightness = 0.7
line_color = "black"
font_family = "Helvetica"
nodelink_depth = 2
`)

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if opts.Format != "json" || opts.VizType != "sunburst" {
		t.Errorf("format/type = %q/%q", opts.Format, opts.VizType)
	}
	if opts.MaxRings != 8 || opts.RingDepth != 60 || opts.LetterSpacing != 12.5 {
		t.Errorf("ring settings = %d/%g/%g", opts.MaxRings, opts.RingDepth, opts.LetterSpacing)
	}
	if opts.Lightness != 0.7 || opts.LineColor != "black" || opts.FontFamily != "Helvetica" {
		t.Errorf("style settings = %g/%q/%q", opts.Lightness, opts.LineColor, opts.FontFamily)
	}
	if opts.NodelinkDepth != 2 {
		t.Errorf("NodelinkDepth = %d, want 2", opts.NodelinkDepth)
	}
	if opts.FontSize != sunburst.DefaultFontSize {
		t.Errorf("unset keys should keep their default, FontSize = %q", opts.FontSize)
	}
}

func TestLoadConfig_ExplicitZero(t *testing.T) {
	path := writeConfig(t, `
letter_spacing = 0.0
lightness = 0.0
`)

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	opts.Input = "words.tsv"
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.LetterSpacing != 0 || opts.Lightness != 0 {
		t.Errorf("letter_spacing/lightness = %g/%g, want 0/0", opts.LetterSpacing, opts.Lightness)
	}
	if opts.RingDepth != sunburst.DefaultRingDepth {
		t.Errorf("RingDepth = %g, want default %g", opts.RingDepth, sunburst.DefaultRingDepth)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"unknown key", "max_ringz = 3\n", errors.ErrCodeInvalidConfig},
		{"wrong type", "max_rings = \"many\"\n", errors.ErrCodeInvalidConfig},
		{"syntax", "max_rings = \n", errors.ErrCodeInvalidConfig},
		{"input is not a config key", "input = \"words.tsv\"\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("LoadConfig() code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("LoadConfig() error = %v, want %s", err, errors.ErrCodeIO)
	}
}
