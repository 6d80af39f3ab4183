// Package pipeline provides the word chart pipeline shared by every entry point.
//
// This package implements the complete parse → partition → render pipeline.
// By centralizing this logic the CLI and tests exercise exactly the same
// stages with the same defaults.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read (word, count) records and aggregate them into a trie
//  2. Partition: Convert subtree counts into proportional ring arcs
//  3. Render: Generate output in the requested format (SVG, JSON, PDF, PNG, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:  "words.tsv",
//	    Format: pipeline.FormatSVG,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifact
//
// Run individual stages:
//
//	records, err := pipeline.Parse(ctx, opts)
//	t, err := pipeline.BuildTrie(records)
//	tiers, err := pipeline.Partition(t)
//	data, err := pipeline.Render(ctx, t, tiers, opts)
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordvis/pkg/errors"
	"github.com/matzehuels/wordvis/pkg/render/nodelink"
	"github.com/matzehuels/wordvis/pkg/render/sunburst"
	"github.com/matzehuels/wordvis/pkg/rings"
	"github.com/matzehuels/wordvis/pkg/trie"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPNGScale renders PNG output at twice the SVG resolution.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Visualization types.
const (
	VizTypeSunburst = "sunburst"
	VizTypeNodelink = "nodelink"
)

// DefaultFormat is the output format used when none is given or implied.
const DefaultFormat = FormatSVG

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeSunburst

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeSunburst: true,
	VizTypeNodelink: true,
}

// styleReserved lists characters that would break out of a CSS declaration
// or the surrounding <style> element.
const styleReserved = `<>&;{}"`

// vizFormats lists the formats each visualization type can produce.
var vizFormats = map[string]map[string]bool{
	VizTypeSunburst: {FormatSVG: true, FormatPNG: true, FormatPDF: true, FormatJSON: true},
	VizTypeNodelink: {FormatSVG: true, FormatPNG: true, FormatPDF: true, FormatDOT: true},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// Render settings can also be loaded from a TOML file with [LoadConfig].
//
// A zero numeric setting in a zero Options means "use the default". Start
// from [DefaultOptions] to keep an explicit zero, such as a letter spacing
// of 0 that labels every segment.
type Options struct {
	// Input and output
	Input  string `json:"input" toml:"-"`
	Output string `json:"output,omitempty" toml:"-"`
	Format string `json:"format,omitempty" toml:"format"`

	// Visualization
	VizType string `json:"viz_type,omitempty" toml:"type"`

	// Sunburst settings
	RingDepth     float64 `json:"ring_depth,omitempty" toml:"ring_depth"`
	MaxRings      int     `json:"max_rings,omitempty" toml:"max_rings"`
	LetterSpacing float64 `json:"letter_spacing,omitempty" toml:"letter_spacing"`
	Lightness     float64 `json:"lightness,omitempty" toml:"lightness"`
	LineColor     string  `json:"line_color,omitempty" toml:"line_color"`
	FontFamily    string  `json:"font_family,omitempty" toml:"font_family"`
	FontSize      string  `json:"font_size,omitempty" toml:"font_size"`
	FontColor     string  `json:"font_color,omitempty" toml:"font_color"`

	// Nodelink settings
	NodelinkDepth int `json:"nodelink_depth,omitempty" toml:"nodelink_depth"`

	// Raster output
	PNGScale float64 `json:"png_scale,omitempty" toml:"png_scale"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool

	// seeded marks options built by DefaultOptions, whose numeric zeros
	// are explicit values.
	seeded bool
}

// DefaultOptions returns Options with every render setting at its default.
// Numeric fields changed afterwards are kept as given, zero included.
func DefaultOptions() Options {
	return Options{
		VizType:       DefaultVizType,
		RingDepth:     sunburst.DefaultRingDepth,
		MaxRings:      sunburst.DefaultMaxRings,
		LetterSpacing: sunburst.DefaultLetterSpacing,
		Lightness:     sunburst.DefaultLightness,
		LineColor:     sunburst.DefaultLineColor,
		FontFamily:    sunburst.DefaultFontFamily,
		FontSize:      sunburst.DefaultFontSize,
		FontColor:     sunburst.DefaultFontColor,
		NodelinkDepth: nodelink.DefaultMaxDepth,
		PNGScale:      DefaultPNGScale,
		seeded:        true,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Trie is the aggregated prefix tree.
	Trie *trie.Trie

	// Tiers holds the ring arcs, one tier per depth.
	Tiers rings.Tiers

	// Artifact is the rendered output in Format.
	Artifact []byte

	// Format is the format Artifact was rendered in.
	Format string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records       int
	Nodes         int
	Words         int
	Rings         int
	ParseTime     time.Duration
	PartitionTime time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid type: %q (must be one of: sunburst, nodelink)", vizType)
	}
	return nil
}

// FormatFromPath infers an output format from a file extension.
// It returns an empty string when the extension names no known format.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ValidFormats[ext] {
		return ext
	}
	return ""
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "input file is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = FormatFromPath(o.Output)
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if !o.seeded {
		o.setNumericDefaults()
	}
	if o.LineColor == "" {
		o.LineColor = sunburst.DefaultLineColor
	}
	if o.FontFamily == "" {
		o.FontFamily = sunburst.DefaultFontFamily
	}
	if o.FontSize == "" {
		o.FontSize = sunburst.DefaultFontSize
	}
	if o.FontColor == "" {
		o.FontColor = sunburst.DefaultFontColor
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

func (o *Options) setNumericDefaults() {
	if o.RingDepth == 0 {
		o.RingDepth = sunburst.DefaultRingDepth
	}
	if o.MaxRings == 0 {
		o.MaxRings = sunburst.DefaultMaxRings
	}
	if o.LetterSpacing == 0 {
		o.LetterSpacing = sunburst.DefaultLetterSpacing
	}
	if o.Lightness == 0 {
		o.Lightness = sunburst.DefaultLightness
	}
	if o.NodelinkDepth == 0 {
		o.NodelinkDepth = nodelink.DefaultMaxDepth
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if !vizFormats[o.VizType][o.Format] {
		return errors.New(errors.ErrCodeUnsupported,
			"%s output is not available for %s charts", o.Format, o.VizType)
	}

	switch {
	case o.RingDepth <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "ring depth must be positive, got %g", o.RingDepth)
	case o.MaxRings <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "max rings must be positive, got %d", o.MaxRings)
	case o.LetterSpacing < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "letter spacing must not be negative, got %g", o.LetterSpacing)
	case o.Lightness < 0 || o.Lightness > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "lightness must be within [0, 1], got %g", o.Lightness)
	case o.NodelinkDepth <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "nodelink depth must be positive, got %d", o.NodelinkDepth)
	case o.PNGScale <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "png scale must be positive, got %g", o.PNGScale)
	}
	for _, v := range []struct{ name, value string }{
		{"line color", o.LineColor},
		{"font family", o.FontFamily},
		{"font size", o.FontSize},
		{"font color", o.FontColor},
	} {
		if strings.ContainsAny(v.value, styleReserved) {
			return errors.New(errors.ErrCodeInvalidConfig,
				"%s %q must not contain any of %s", v.name, v.value, styleReserved)
		}
	}
	return nil
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// SunburstOptions returns the renderer options for the sunburst chart.
func (o *Options) SunburstOptions() []sunburst.Option {
	return []sunburst.Option{
		sunburst.WithRingDepth(o.RingDepth),
		sunburst.WithMaxRings(o.MaxRings),
		sunburst.WithLetterSpacing(o.LetterSpacing),
		sunburst.WithLightness(o.Lightness),
		sunburst.WithLineColor(o.LineColor),
		sunburst.WithFont(o.FontFamily, o.FontSize, o.FontColor),
	}
}

// NodelinkOptions returns the diagram options for the nodelink chart.
func (o *Options) NodelinkOptions() nodelink.Options {
	return nodelink.Options{
		MaxDepth:  o.NodelinkDepth,
		Lightness: o.Lightness,
	}
}
