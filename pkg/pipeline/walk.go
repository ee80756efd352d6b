package pipeline

import (
	stderrors "errors"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/graph"
	"github.com/matzehuels/hillclimb/pkg/search"
)

// Walk runs the search on g from start to goal and maps search failures to
// error codes. Each move is logged at debug level.
func Walk(g *graph.Graph, start, goal string, maxSteps int, logger *log.Logger) (search.Result[string], error) {
	opts := []search.Option{search.WithMaxSteps(maxSteps)}
	if logger != nil {
		opts = append(opts, search.WithStepHook(func(step int, node string, score float64) {
			logger.Debug("step", "n", step, "node", node, "h", score)
		}))
	}

	res, err := search.Walk[string](g, start, goal, g.Heuristic, opts...)
	switch {
	case err == nil:
		return res, nil
	case stderrors.Is(err, search.ErrStepLimit):
		return res, errors.Wrap(errors.ErrCodeStepLimit, err, "search from %s to %s did not finish within %d steps", start, goal, maxSteps)
	case stderrors.Is(err, search.ErrMissingHeuristic):
		return res, errors.Wrap(errors.ErrCodeInvalidHeuristic, err, "search from %s to %s", start, goal)
	default:
		return res, errors.Wrap(errors.ErrCodeInternal, err, "search from %s to %s", start, goal)
	}
}
