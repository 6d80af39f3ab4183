package pipeline

import (
	"context"

	"github.com/matzehuels/wordvis/pkg/errors"
	"github.com/matzehuels/wordvis/pkg/render"
	"github.com/matzehuels/wordvis/pkg/render/nodelink"
	"github.com/matzehuels/wordvis/pkg/render/sunburst"
	"github.com/matzehuels/wordvis/pkg/rings"
	"github.com/matzehuels/wordvis/pkg/trie"
)

// Render generates the output artifact in opts.Format.
func Render(ctx context.Context, t *trie.Trie, tiers rings.Tiers, opts Options) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if opts.IsNodelink() {
		return renderNodelink(ctx, t, opts)
	}
	return renderSunburst(ctx, tiers, opts)
}

// renderSunburst generates sunburst outputs.
func renderSunburst(ctx context.Context, tiers rings.Tiers, opts Options) ([]byte, error) {
	if opts.Format == FormatJSON {
		return sunburst.RenderJSON(tiers)
	}

	if clipped := tiers.Depth() - sunburst.Capacity(opts.MaxRings); clipped > 0 {
		opts.Logger.Info("outer rings are clipped by the canvas",
			"rings", tiers.Depth(),
			"clipped", clipped)
	}

	svg := sunburst.RenderSVG(tiers, opts.SunburstOptions()...)
	switch opts.Format {
	case FormatSVG:
		return svg, nil
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	case FormatPNG:
		return render.ToPNG(ctx, svg, opts.PNGScale)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported sunburst format: %s", opts.Format)
	}
}

// renderNodelink generates nodelink outputs directly from the trie.
func renderNodelink(ctx context.Context, t *trie.Trie, opts Options) ([]byte, error) {
	dot := nodelink.ToDOT(t, opts.NodelinkOptions())

	switch opts.Format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.PNGScale)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported nodelink format: %s", opts.Format)
	}
}
