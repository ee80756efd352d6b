package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hillclimb/pkg/graph"
	"github.com/matzehuels/hillclimb/pkg/render"
)

// Layout engines accepted in [Options.Engine].
const (
	EngineNeato = "neato" // spring model, the default
	EngineFDP   = "fdp"
	EngineCirco = "circo"
	EngineDot   = "dot"
)

// DefaultHighlight is the color used for path edges.
const DefaultHighlight = "red"

// nodeFill matches the default node color of common plotting libraries, so
// diagrams look familiar next to hand-made plots.
const nodeFill = "#1f78b4"

// Options configures node-link diagram generation.
type Options struct {
	// Title is drawn above the graph. Empty means no title.
	Title string

	// Path, if non-empty, is a sequence of nodes whose connecting edges are
	// drawn in the highlight color with a thicker pen.
	Path []string

	// Highlight overrides DefaultHighlight.
	Highlight string

	// Goal, if set, is drawn with a double outline.
	Goal string

	// Engine selects the Graphviz layout engine. Empty means EngineNeato.
	Engine string
}

// ToDOT converts a search graph to undirected Graphviz DOT source.
// Each edge is labelled with its weight.
func ToDOT(g *graph.Graph, opts Options) string {
	highlight := opts.Highlight
	if highlight == "" {
		highlight = DefaultHighlight
	}

	onPath := make(map[graph.Edge]bool)
	for _, e := range g.PathEdges(opts.Path) {
		onPath[e] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=t;\n")
		buf.WriteString("  fontsize=20;\n")
	}
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, fontcolor=white, fontsize=16, width=0.5, fixedsize=true];\n", nodeFill)
	buf.WriteString("  edge [fontsize=12, len=1.5];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := fmtNodeAttrs(n, opts.Goal)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := fmtEdgeAttrs(e, onPath[e], highlight)
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.A, e.B, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtNodeAttrs(n graph.Node, goal string) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.ID)}
	if n.ID == goal {
		attrs = append(attrs, "shape=doublecircle")
	}
	return attrs
}

func fmtEdgeAttrs(e graph.Edge, highlighted bool, color string) []string {
	attrs := []string{fmt.Sprintf("label=%q", FormatWeight(e.Weight))}
	if highlighted {
		attrs = append(attrs, fmt.Sprintf("color=%q", color), "penwidth=2")
	}
	return attrs
}

// FormatWeight prints a weight without trailing zeros ("5", "2.5").
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Render lays out dot and returns it in the requested format. FormatDOT
// returns the source unchanged.
//
// PNG is converted from SVG at twice the size when rsvg-convert is
// installed and rendered by Graphviz otherwise. PDF always needs
// rsvg-convert.
func Render(ctx context.Context, dot, engine, format string) ([]byte, error) {
	switch format {
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		return RenderSVG(ctx, dot, engine)
	case render.FormatPDF:
		svg, err := RenderSVG(ctx, dot, engine)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, svg)
	case render.FormatPNG:
		if !render.HasRSVG() {
			return RenderPNG(ctx, dot, engine)
		}
		svg, err := RenderSVG(ctx, dot, engine)
		if err != nil {
			return nil, err
		}
		return render.ToPNG(ctx, svg, 2.0)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// RenderSVG lays out a DOT graph with the given engine and renders it to SVG
// using Graphviz. An empty engine means EngineNeato.
func RenderSVG(ctx context.Context, dot, engine string) ([]byte, error) {
	svg, err := renderGraphviz(ctx, dot, engine, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG renders a DOT graph to PNG in process, without rsvg-convert.
func RenderPNG(ctx context.Context, dot, engine string) ([]byte, error) {
	return renderGraphviz(ctx, dot, engine, graphviz.PNG)
}

func renderGraphviz(ctx context.Context, dot, engine string, format graphviz.Format) ([]byte, error) {
	if engine == "" {
		engine = EngineNeato
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(engine))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
