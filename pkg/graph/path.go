package graph

import "slices"

// ShortestPath returns a path with the fewest edges from src to dst, using a
// breadth-first search over Neighbors. Edge weights are ignored. Among paths
// of equal length the one discovered first in neighbor order wins, so the
// result is deterministic.
//
// Returns (nil, false) if either node is missing or dst is unreachable.
// A path from a node to itself is the single-element slice {src}.
func (g *Graph) ShortestPath(src, dst string) ([]string, bool) {
	if !g.HasNode(src) || !g.HasNode(dst) {
		return nil, false
	}
	if src == dst {
		return []string{src}, true
	}

	prev := map[string]string{src: src}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.adj[cur] {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			if next == dst {
				return g.unwind(prev, src, dst), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

func (g *Graph) unwind(prev map[string]string, src, dst string) []string {
	path := []string{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// PathEdges returns the edges traversed by consecutive nodes of path.
// Pairs that are not connected in g are skipped.
func (g *Graph) PathEdges(path []string) []Edge {
	var out []Edge
	for i := 0; i+1 < len(path); i++ {
		if e, ok := g.Edge(path[i], path[i+1]); ok {
			out = append(out, e)
		}
	}
	return out
}
