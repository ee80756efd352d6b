// Package graph provides the undirected, heuristic-annotated graph that the
// hill-climbing search runs on.
//
// # Overview
//
// A [Graph] holds labelled nodes, each with a heuristic value (the caller's
// estimate of the distance to the goal), and undirected edges between them.
// Every edge carries a weight equal to the sum of its endpoints' heuristic
// values. The weight is informational: renderers print it on the edge, the
// search never reads it.
//
// # Building a Graph
//
//	g := graph.New()
//	_ = g.AddNode("A", 3)
//	_ = g.AddNode("B", 2)
//	e, _ := g.AddEdge("A", "B") // e.Weight == 5
//
// # Ordering
//
// Node, edge and neighbor iteration follow insertion order. This matters for
// the search: when two neighbors share the best heuristic value the one whose
// edge was added first is chosen.
//
// # Paths
//
// [Graph.ShortestPath] finds a fewest-hops path with breadth-first search.
// It is used for the path overlay in rendered diagrams and is independent of
// the search result.
package graph
