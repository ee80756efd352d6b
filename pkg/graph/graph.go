package graph

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidHeuristic is returned by [Graph.AddNode] when the heuristic
	// value is negative or NaN.
	ErrInvalidHeuristic = errors.New("heuristic must be a non-negative number")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either endpoint
	// has not been added with [Graph.AddNode].
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same node.
	ErrSelfLoop = errors.New("self-loops are not allowed")
)

// Node is a vertex of the search graph together with its heuristic value,
// the caller's estimate of the distance from this node to the goal.
type Node struct {
	ID        string  // Unique label (also used as display label)
	Heuristic float64 // Estimated distance to the goal, lower is better
}

// Edge is an undirected connection between two nodes. A and B are stored in
// the order the edge was first added.
//
// Weight is always Heuristic(A) + Heuristic(B). It is used for display only
// and plays no part in the search.
type Edge struct {
	A      string
	B      string
	Weight float64
}

// Has reports whether id is one of the edge's endpoints.
func (e Edge) Has(id string) bool { return e.A == id || e.B == id }

// Other returns the endpoint opposite to id. The result is undefined when id
// is not an endpoint of e.
func (e Edge) Other(id string) string {
	if e.A == id {
		return e.B
	}
	return e.A
}

type edgeKey struct{ a, b string }

func keyOf(a, b string) edgeKey {
	if b < a {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Graph is an undirected graph whose nodes carry heuristic values.
//
// All iteration orders are deterministic: Nodes follows node insertion order,
// Edges follows edge insertion order, and Neighbors lists adjacent nodes in
// the order their connecting edges were added. The search relies on the
// latter to break ties between equally scored neighbors.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent mutation; concurrent reads are fine once
// construction is complete.
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
	index map[edgeKey]int
	adj   map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		index: make(map[edgeKey]int),
		adj:   make(map[string][]string),
	}
}

// AddNode adds a node with the given heuristic value.
// Returns ErrInvalidNodeID for an empty ID, ErrDuplicateNodeID if the ID is
// already present, or ErrInvalidHeuristic for negative or NaN values.
func (g *Graph) AddNode(id string, heuristic float64) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	if heuristic < 0 || math.IsNaN(heuristic) {
		return fmt.Errorf("%w: %v", ErrInvalidHeuristic, heuristic)
	}
	g.nodes[id] = &Node{ID: id, Heuristic: heuristic}
	g.order = append(g.order, id)
	return nil
}

// AddEdge connects a and b with weight Heuristic(a) + Heuristic(b).
// Adding an edge that already exists (in either direction) is a no-op and
// returns the existing edge. Returns ErrUnknownEndpoint if either node is
// missing and ErrSelfLoop if a == b.
func (g *Graph) AddEdge(a, b string) (Edge, error) {
	na, ok := g.nodes[a]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, b)
	}
	if a == b {
		return Edge{}, fmt.Errorf("%w: %s", ErrSelfLoop, a)
	}

	k := keyOf(a, b)
	if i, exists := g.index[k]; exists {
		return g.edges[i], nil
	}

	e := Edge{A: a, B: b, Weight: na.Heuristic + nb.Heuristic}
	g.index[k] = len(g.edges)
	g.edges = append(g.edges, e)
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	return e, nil
}

// Node returns the node with the given ID and true, or the zero Node and
// false if it does not exist.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Heuristic returns the heuristic value of id and whether the node exists.
// Its signature matches search.Heuristic[string].
func (g *Graph) Heuristic(id string) (float64, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return 0, false
	}
	return n.Heuristic, true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	for i, id := range g.order {
		out[i] = *g.nodes[id]
	}
	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Edge returns the edge between a and b regardless of direction.
func (g *Graph) Edge(a, b string) (Edge, bool) {
	i, ok := g.index[keyOf(a, b)]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// Neighbors returns the nodes adjacent to id in edge insertion order.
// Returns nil for unknown or isolated nodes. The returned slice should be
// treated as read-only.
func (g *Graph) Neighbors(id string) []string { return g.adj[id] }

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
