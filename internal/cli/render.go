package cli

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/wordvis/pkg/errors"
	"github.com/matzehuels/wordvis/pkg/pipeline"
	"github.com/matzehuels/wordvis/pkg/render/nodelink"
	"github.com/matzehuels/wordvis/pkg/render/sunburst"
	"github.com/matzehuels/wordvis/pkg/rings"
)

// chartFlags holds the command-line flags of the root command.
type chartFlags struct {
	config        string  // TOML file with render settings
	format        string  // output format: svg, json, pdf, png, dot
	vizType       string  // visualization type: sunburst, nodelink
	maxRings      int     // canvas size in rings, including the empty centre
	ringDepth     float64 // ring thickness in pixels
	letterSpacing float64 // minimum distance between labels
	lightness     float64 // HSL lightness of the letter fills
	lineColor     string  // segment outline colour
	nodelinkDepth int     // deepest level of the nodelink diagram
	pngScale      float64 // PNG resolution multiplier
	stats         bool    // print the per-ring table
	verbose       bool    // debug logging
}

func (f *chartFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML file with render settings")
	fs.StringVarP(&f.format, "format", "f", "", "output format: svg, json, pdf, png, dot (default: from output extension, else svg)")
	fs.StringVarP(&f.vizType, "type", "t", pipeline.DefaultVizType, "visualization type: sunburst, nodelink")
	fs.IntVar(&f.maxRings, "max-rings", sunburst.DefaultMaxRings, "canvas size in rings, including the empty centre")
	fs.Float64Var(&f.ringDepth, "ring-depth", sunburst.DefaultRingDepth, "ring thickness in pixels")
	fs.Float64Var(&f.letterSpacing, "letter-spacing", sunburst.DefaultLetterSpacing, "minimum distance between labels in pixels")
	fs.Float64Var(&f.lightness, "lightness", sunburst.DefaultLightness, "lightness of the letter colours (0-1)")
	fs.StringVar(&f.lineColor, "line-color", sunburst.DefaultLineColor, "segment outline colour")
	fs.IntVar(&f.nodelinkDepth, "nodelink-depth", nodelink.DefaultMaxDepth, "letter levels drawn by the nodelink diagram")
	fs.Float64Var(&f.pngScale, "png-scale", pipeline.DefaultPNGScale, "PNG resolution multiplier")
	fs.BoolVar(&f.stats, "stats", false, "print per-ring statistics")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
}

// options builds pipeline options from the config file, if any, and then
// applies every flag that was set explicitly on the command line.
func (f *chartFlags) options(fs *pflag.FlagSet, input, output string) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = pipeline.LoadConfig(f.config); err != nil {
			return pipeline.Options{}, err
		}
	}
	opts.Input = input
	opts.Output = output

	if fs.Changed("format") {
		opts.Format = f.format
	}
	if fs.Changed("type") {
		opts.VizType = f.vizType
	}
	if fs.Changed("max-rings") {
		opts.MaxRings = f.maxRings
	}
	if fs.Changed("ring-depth") {
		opts.RingDepth = f.ringDepth
	}
	if fs.Changed("letter-spacing") {
		opts.LetterSpacing = f.letterSpacing
	}
	if fs.Changed("lightness") {
		opts.Lightness = f.lightness
	}
	if fs.Changed("line-color") {
		opts.LineColor = f.lineColor
	}
	if fs.Changed("nodelink-depth") {
		opts.NodelinkDepth = f.nodelinkDepth
	}
	if fs.Changed("png-scale") {
		opts.PNGScale = f.pngScale
	}
	return opts, nil
}

// runChart executes the pipeline and writes the artifact to opts.Output.
func (c *CLI) runChart(ctx context.Context, opts pipeline.Options, showStats bool) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(logger)
	if err := writeOutput(opts.Output, result.Artifact); err != nil {
		return err
	}
	prog.done("wrote " + opts.Output)

	printSuccess(c.Out, "Chart complete")
	printFile(c.Out, opts.Output)
	printKeyValue(c.Out, "words", strconv.Itoa(result.Stats.Words))
	printKeyValue(c.Out, "rings", strconv.Itoa(result.Stats.Rings))
	printKeyValue(c.Out, "format", result.Format)
	if showStats {
		printRingStats(c.Out, rings.Summarize(result.Tiers))
	}
	return nil
}

// writeOutput writes data to path through a temporary file in the same
// directory, so a failed run never leaves a truncated artifact behind.
func writeOutput(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
