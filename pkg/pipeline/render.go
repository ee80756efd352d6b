package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/hillclimb/pkg/graph"
	"github.com/matzehuels/hillclimb/pkg/render/nodelink"
)

// GraphDOT returns the DOT source of the plain graph diagram.
func GraphDOT(g *graph.Graph) string {
	return nodelink.ToDOT(g, nodelink.Options{Title: GraphTitle})
}

// PathDOT returns the DOT source of the diagram with path drawn in red.
func PathDOT(g *graph.Graph, path []string) string {
	var goal string
	if len(path) > 0 {
		goal = path[len(path)-1]
	}
	return nodelink.ToDOT(g, nodelink.Options{
		Title: PathTitle,
		Path:  path,
		Goal:  goal,
	})
}

// Render lays out dot once per requested format.
func Render(ctx context.Context, dot string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := nodelink.Render(ctx, dot, opts.Engine, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
