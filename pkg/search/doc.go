// Package search implements greedy hill-climbing over any graph that can list
// a node's neighbors.
//
// [Walk] starts at a node and repeatedly moves to the neighbor with the lowest
// heuristic score, stopping when it reaches the goal or when no neighbor
// scores strictly lower than the current node (a local optimum or plateau).
// There is no backtracking and no restart.
//
//	res, err := search.Walk[string](g, "A", "F", g.Heuristic)
//	if err != nil {
//	    return err // missing heuristic value or step limit
//	}
//	if !res.Found {
//	    // stuck on res.Trace[len(res.Trace)-1]
//	}
//
// On success [Result.Node] is the goal. The full sequence of visited nodes is
// available in [Result.Trace].
//
// The walk is bounded by [DefaultMaxSteps] moves unless [WithMaxSteps] says
// otherwise.
package search
