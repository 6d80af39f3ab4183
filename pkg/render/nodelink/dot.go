package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordvis/pkg/errors"
	"github.com/matzehuels/wordvis/pkg/render"
	"github.com/matzehuels/wordvis/pkg/render/sunburst"
	"github.com/matzehuels/wordvis/pkg/trie"
)

// DefaultMaxDepth limits diagrams to the first three letters. Deeper tries
// produce graphs Graphviz lays out too wide to read.
const DefaultMaxDepth = 3

// Options configures node-link diagram rendering.
type Options struct {
	// MaxDepth is the deepest letter level drawn. Zero means DefaultMaxDepth.
	MaxDepth int
	// Lightness of the letter fill colours, as in the sunburst palette.
	// Zero means sunburst.DefaultLightness.
	Lightness float64
}

// ToDOT converts the top levels of a trie to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Nodes are identified by the prefix they spell, starting from "^" for the
// root. Word endings are drawn as small "$" points so the diagram shows
// which prefixes are words in their own right.
func ToDOT(t *trie.Trie, opts Options) string {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Lightness <= 0 {
		opts.Lightness = sunburst.DefaultLightness
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=Arial, fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	type item struct {
		node   *trie.Node
		prefix string
		depth  int
	}

	var edges []string
	stack := []item{{node: t.Root(), prefix: string(trie.StartLabel)}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		label := fmtLabel(it.node)
		attrs := fmtAttrs(it.node, label, opts.Lightness)
		fmt.Fprintf(&buf, "  %q [%s];\n", it.prefix, strings.Join(attrs, ", "))

		if it.depth >= opts.MaxDepth {
			continue
		}
		if end := it.node.End(); end != nil {
			id := it.prefix + string(trie.EndLabel)
			fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(fmtAttrs(end, fmtLabel(end), opts.Lightness), ", "))
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", it.prefix, id))
		}

		children := it.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			id := it.prefix + string(c.Letter())
			stack = append(stack, item{node: c, prefix: id, depth: it.depth + 1})
		}
		for _, c := range children {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", it.prefix, it.prefix+string(c.Letter())))
		}
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *trie.Node) string {
	switch n.Kind() {
	case trie.KindStart:
		return fmt.Sprintf("%c\n%d", trie.StartLabel, n.Count())
	case trie.KindEnd:
		return string(trie.EndLabel)
	default:
		return fmt.Sprintf("%s\n%d", strings.ToUpper(string(n.Letter())), n.Count())
	}
}

func fmtAttrs(n *trie.Node, label string, lightness float64) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch n.Kind() {
	case trie.KindLetter:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", sunburst.ColorFor(n.Letter(), lightness)))
	case trie.KindEnd:
		attrs = append(attrs, "shape=point", "width=0.12", "fillcolor=\"#555555\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing starts at the
// origin and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
