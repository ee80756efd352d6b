// Package problem describes a hill-climbing task and turns it into a graph.
//
// A [Problem] lists node labels, edge labels, a heuristic value per node and
// the start and goal nodes. It can be assembled from the interactive prompts
// ([ParseList], [ParseHeuristic]) or read from a JSON or TOML file:
//
//	{
//	  "nodes": ["A", "B", "C"],
//	  "edges": ["AB", "BC"],
//	  "heuristic": {"A": 2, "B": 1, "C": 0},
//	  "start": "A",
//	  "goal": "C"
//	}
//
// The TOML form uses the same keys:
//
//	nodes = ["A", "B", "C"]
//	edges = ["AB", "BC"]
//	start = "A"
//	goal = "C"
//
//	[heuristic]
//	A = 2.0
//	B = 1.0
//	C = 0.0
//
// All labels are upper-cased. [Problem.Validate] reports malformed input with
// the input codes of package errors, and [Problem.Build] returns the
// corresponding graph with edge weights already computed.
package problem
