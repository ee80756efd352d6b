package problem

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/graph"
)

// Problem is a complete hill-climbing task: the graph definition, the
// heuristic table and the two search endpoints.
//
// Edges are written as edge labels: either exactly two characters, one per
// endpoint ("AB"), or two labels joined by a dash ("N1-N2").
type Problem struct {
	Nodes     []string           `json:"nodes" toml:"nodes"`
	Edges     []string           `json:"edges" toml:"edges"`
	Heuristic map[string]float64 `json:"heuristic" toml:"heuristic"`
	Start     string             `json:"start" toml:"start"`
	Goal      string             `json:"goal" toml:"goal"`
}

// Example returns the demonstration problem: nodes A..F with heuristic
// values A=3 B=2 C=2 D=3 E=1 F=0, searched from A to F.
func Example() Problem {
	return Problem{
		Nodes: []string{"A", "B", "C", "D", "E", "F"},
		Edges: []string{"AB", "AC", "BD", "BE", "CF", "DE", "EF"},
		Heuristic: map[string]float64{
			"A": 3, "B": 2, "C": 2, "D": 3, "E": 1, "F": 0,
		},
		Start: "A",
		Goal:  "F",
	}
}

// Normalize returns a copy of p with every label trimmed and upper-cased.
func (p Problem) Normalize() Problem {
	out := Problem{
		Nodes: make([]string, len(p.Nodes)),
		Edges: make([]string, len(p.Edges)),
		Start: normalizeLabel(p.Start),
		Goal:  normalizeLabel(p.Goal),
	}
	for i, n := range p.Nodes {
		out.Nodes[i] = normalizeLabel(n)
	}
	for i, e := range p.Edges {
		out.Edges[i] = normalizeLabel(e)
	}
	if p.Heuristic != nil {
		out.Heuristic = make(map[string]float64, len(p.Heuristic))
		for k, v := range p.Heuristic {
			out.Heuristic[normalizeLabel(k)] = v
		}
	}
	return out
}

func normalizeLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate checks p and returns the first problem found as an *errors.Error
// with one of the input codes:
//   - ErrCodeInvalidInput for bad, duplicate or missing node labels
//   - ErrCodeUnknownEdgeEndpoint for malformed edges or edges to undeclared nodes
//   - ErrCodeInvalidHeuristic for missing or negative heuristic values
//   - ErrCodeUnknownNode for heuristic entries, start or goal naming undeclared nodes
//   - ErrCodeMissingEndpoint when start or goal is empty
//
// Validate does not normalize; call Normalize first for user input.
func (p Problem) Validate() error {
	if len(p.Nodes) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one node is required")
	}

	declared := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		if err := errors.ValidateLabel(n); err != nil {
			return err
		}
		if declared[n] {
			return errors.New(errors.ErrCodeInvalidInput, "node %q declared twice", n)
		}
		declared[n] = true
	}

	for _, label := range p.Edges {
		a, b, err := SplitEdge(label)
		if err != nil {
			return err
		}
		for _, end := range []string{a, b} {
			if !declared[end] {
				return errors.New(errors.ErrCodeUnknownEdgeEndpoint, "edge %q references unknown node %q", label, end)
			}
		}
		if a == b {
			return errors.New(errors.ErrCodeInvalidInput, "edge %q connects node %q to itself", label, a)
		}
	}

	for _, n := range p.Nodes {
		v, ok := p.Heuristic[n]
		if !ok {
			return errors.New(errors.ErrCodeInvalidHeuristic, "no heuristic value for node %q", n)
		}
		if v < 0 || math.IsNaN(v) {
			return errors.New(errors.ErrCodeInvalidHeuristic, "heuristic value for node %q must be non-negative, got %v", n, v)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(p.Heuristic)) {
		if !declared[k] {
			return errors.New(errors.ErrCodeUnknownNode, "heuristic value given for unknown node %q", k)
		}
	}

	for _, ep := range []struct{ role, id string }{{"start", p.Start}, {"goal", p.Goal}} {
		if ep.id == "" {
			return errors.New(errors.ErrCodeMissingEndpoint, "%s node is required", ep.role)
		}
		if !declared[ep.id] {
			return errors.New(errors.ErrCodeUnknownNode, "%s node %q is not in the graph", ep.role, ep.id)
		}
	}

	return nil
}

// Build validates p and constructs its graph. Nodes and edges are added in
// the order they are listed, which fixes the neighbor order the search uses
// to break ties.
func (p Problem) Build() (*graph.Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := graph.New()
	for _, n := range p.Nodes {
		if err := g.AddNode(n, p.Heuristic[n]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add node %q", n)
		}
	}
	for _, label := range p.Edges {
		a, b, _ := SplitEdge(label)
		if _, err := g.AddEdge(a, b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add edge %q", label)
		}
	}
	return g, nil
}

// Warnings reports conditions that do not stop a search but usually make its
// result meaningless. Currently this is a goal whose heuristic value is not
// the unique global minimum. p must be valid.
func (p Problem) Warnings() []string {
	goal, ok := p.Heuristic[p.Goal]
	if !ok {
		return nil
	}
	var warnings []string
	for _, n := range p.Nodes {
		if n == p.Goal {
			continue
		}
		if v := p.Heuristic[n]; v <= goal {
			warnings = append(warnings, fmt.Sprintf(
				"node %s has heuristic %v, not above goal %s (%v); the search may stop early or on the wrong node",
				n, v, p.Goal, goal))
		}
	}
	return warnings
}
