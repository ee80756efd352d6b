package search

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxSteps bounds the number of moves a walk may make when no
// [WithMaxSteps] option is given.
const DefaultMaxSteps = 10000

var (
	// ErrMissingHeuristic is returned when the heuristic has no value for a
	// node the walk needs to score.
	ErrMissingHeuristic = errors.New("missing heuristic value")

	// ErrStepLimit is returned when the walk makes more moves than allowed
	// by [WithMaxSteps]. A strictly decreasing walk over finite values cannot
	// revisit a node, so this only fires on pathological inputs.
	ErrStepLimit = errors.New("step limit exceeded")
)

// Neighborer is the read-only view of a graph the walk needs.
// *graph.Graph satisfies Neighborer[string].
type Neighborer[N comparable] interface {
	Neighbors(node N) []N
}

// Heuristic returns the score of a node (lower is closer to the goal) and
// whether a score is defined for it.
type Heuristic[N comparable] func(node N) (float64, bool)

// Result is the outcome of a walk.
type Result[N comparable] struct {
	// Node is the node the walk stopped on when it reached the goal. It is
	// always the goal itself and the zero value when Found is false.
	Node N

	// Found reports whether the goal was reached. A walk that stops on a
	// local optimum returns Found == false with a nil error.
	Found bool

	// Steps is the number of moves made.
	Steps int

	// Trace lists every node visited, starting with start. On failure the
	// last element is the local optimum the walk got stuck on.
	Trace []N
}

// Options configures a walk.
type Options struct {
	// MaxSteps is the maximum number of moves. Values <= 0 mean
	// DefaultMaxSteps.
	MaxSteps int

	// onStep is set through WithStepHook, which checks the node type.
	onStep func(step int, node any, score float64)
}

// Option modifies Options.
type Option func(*Options)

// WithMaxSteps caps the number of moves before the walk fails with ErrStepLimit.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithStepHook registers fn to observe each move: the step number, the node
// moved to and its score. N must match the node type of the walk; a hook
// registered for another type is never called.
func WithStepHook[N comparable](fn func(step int, node N, score float64)) Option {
	return func(o *Options) {
		o.onStep = func(step int, node any, score float64) {
			if n, ok := node.(N); ok {
				fn(step, n, score)
			}
		}
	}
}

// Walk runs a hill-climbing search from start towards goal.
//
// At every step the neighbors of the current node are scored with h and the
// lowest-scoring one is kept; ties keep the neighbor seen first, so the
// neighbor order of g decides between equal scores. The walk moves only if
// that neighbor scores strictly lower than the current node. Otherwise,
// including when the current node has no neighbors, the walk stops and
// reports Found == false.
//
// Walk is pure: it never mutates g, performs no I/O and returns the same
// Result for the same inputs.
func Walk[N comparable](g Neighborer[N], start, goal N, h Heuristic[N], opts ...Option) (Result[N], error) {
	o := Options{MaxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}

	current := start
	res := Result[N]{Trace: []N{start}}

	for current != goal {
		currentScore, ok := h(current)
		if !ok {
			return res, fmt.Errorf("%w: %v", ErrMissingHeuristic, current)
		}

		var best N
		bestScore := math.Inf(1)
		for _, n := range g.Neighbors(current) {
			score, ok := h(n)
			if !ok {
				return res, fmt.Errorf("%w: %v", ErrMissingHeuristic, n)
			}
			if score < bestScore {
				best, bestScore = n, score
			}
		}

		if bestScore >= currentScore {
			return res, nil
		}

		if res.Steps == o.MaxSteps {
			return res, fmt.Errorf("%w: %d", ErrStepLimit, o.MaxSteps)
		}
		current = best
		res.Steps++
		res.Trace = append(res.Trace, current)
		if o.onStep != nil {
			o.onStep(res.Steps, current, bestScore)
		}
	}

	res.Node = current
	res.Found = true
	return res, nil
}

// FirstHop returns the node the walk moved to from start, or false if it
// never moved.
func (r Result[N]) FirstHop() (N, bool) {
	if len(r.Trace) < 2 {
		var zero N
		return zero, false
	}
	return r.Trace[1], true
}
