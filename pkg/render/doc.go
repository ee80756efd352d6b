// Package render turns search graphs into images.
//
// # Overview
//
// Rendering happens in two steps. The [nodelink] subpackage converts a graph
// to Graphviz DOT source and lays it out in-process with go-graphviz, which
// yields SVG. This package then converts that SVG to other formats using the
// external rsvg-convert tool (from librsvg).
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Title: "Grafo dibujado"})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.EngineNeato)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/hillclimb/pkg/render/nodelink
package render
