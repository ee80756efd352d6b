// Package nodelink renders search graphs as node-link diagrams.
//
// # Overview
//
// This package produces undirected graph drawings using Graphviz, where
// nodes appear as circles and every edge is labelled with its weight. A path
// can be overlaid on top, drawn in red with a thicker pen.
//
// # Usage
//
// Convert a graph to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Title: "Grafo dibujado"})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.EngineNeato)
//
// With a path overlay:
//
//	path, _ := g.ShortestPath("A", "F")
//	dot := nodelink.ToDOT(g, nodelink.Options{
//	    Title: "Grafo con el camino encontrado",
//	    Path:  path,
//	    Goal:  "F",
//	})
//
// For PDF or PNG output, use [Render] with the format name.
//
// # Layout
//
// The default engine is neato, a spring model layout that suits small
// undirected graphs. fdp, circo and dot are also accepted.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
