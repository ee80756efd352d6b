package problem

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/hillclimb/pkg/errors"
)

func TestExampleIsValid(t *testing.T) {
	p := Example()
	if err := p.Validate(); err != nil {
		t.Fatalf("Example().Validate() = %v", err)
	}
	if w := p.Warnings(); len(w) != 0 {
		t.Errorf("Example().Warnings() = %v, want none", w)
	}
}

func TestNormalize(t *testing.T) {
	p := Problem{
		Nodes:     []string{" a", "b "},
		Edges:     []string{"ab"},
		Heuristic: map[string]float64{"a": 1, "B": 0},
		Start:     "a",
		Goal:      " b",
	}
	want := Problem{
		Nodes:     []string{"A", "B"},
		Edges:     []string{"AB"},
		Heuristic: map[string]float64{"A": 1, "B": 0},
		Start:     "A",
		Goal:      "B",
	}
	if diff := cmp.Diff(want, p.Normalize()); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
	if p.Nodes[0] != " a" {
		t.Error("Normalize() must not modify the receiver")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Problem)
		want   errors.Code
	}{
		{"no nodes", func(p *Problem) { p.Nodes = nil }, errors.ErrCodeInvalidInput},
		{"empty label", func(p *Problem) { p.Nodes = append(p.Nodes, "") }, errors.ErrCodeInvalidInput},
		{"duplicate node", func(p *Problem) { p.Nodes = append(p.Nodes, "A") }, errors.ErrCodeInvalidInput},
		{"edge to unknown node", func(p *Problem) { p.Edges = append(p.Edges, "AZ") }, errors.ErrCodeUnknownEdgeEndpoint},
		{"malformed edge", func(p *Problem) { p.Edges = append(p.Edges, "ABC") }, errors.ErrCodeUnknownEdgeEndpoint},
		{"self loop", func(p *Problem) { p.Edges = append(p.Edges, "AA") }, errors.ErrCodeInvalidInput},
		{"missing heuristic", func(p *Problem) { delete(p.Heuristic, "C") }, errors.ErrCodeInvalidHeuristic},
		{"negative heuristic", func(p *Problem) { p.Heuristic["C"] = -1 }, errors.ErrCodeInvalidHeuristic},
		{"NaN heuristic", func(p *Problem) { p.Heuristic["C"] = math.NaN() }, errors.ErrCodeInvalidHeuristic},
		{"heuristic for unknown node", func(p *Problem) { p.Heuristic["Z"] = 1 }, errors.ErrCodeUnknownNode},
		{"missing start", func(p *Problem) { p.Start = "" }, errors.ErrCodeMissingEndpoint},
		{"missing goal", func(p *Problem) { p.Goal = "" }, errors.ErrCodeMissingEndpoint},
		{"unknown start", func(p *Problem) { p.Start = "Z" }, errors.ErrCodeUnknownNode},
		{"unknown goal", func(p *Problem) { p.Goal = "Z" }, errors.ErrCodeUnknownNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Example()
			tt.modify(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("Validate() code = %s, want %s (%v)", got, tt.want, err)
			}
			if !errors.IsInvalidInput(err) {
				t.Errorf("Validate() error %v should be invalid input", err)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	g, err := Example().Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if g.NodeCount() != 6 || g.EdgeCount() != 7 {
		t.Errorf("Build() = %d nodes, %d edges, want 6, 7", g.NodeCount(), g.EdgeCount())
	}

	wantWeights := map[string]float64{
		"AB": 5, "AC": 5, "BD": 5, "BE": 3, "CF": 2, "DE": 4, "EF": 1,
	}
	for _, e := range g.Edges() {
		if w := wantWeights[e.A+e.B]; e.Weight != w {
			t.Errorf("edge %s%s weight = %v, want %v", e.A, e.B, e.Weight, w)
		}
	}
}

func TestBuildDashedEdges(t *testing.T) {
	p := Problem{
		Nodes:     []string{"N1", "N2"},
		Edges:     []string{"N1-N2"},
		Heuristic: map[string]float64{"N1": 1.5, "N2": 0},
		Start:     "N1",
		Goal:      "N2",
	}
	g, err := p.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	e, ok := g.Edge("N1", "N2")
	if !ok || e.Weight != 1.5 {
		t.Errorf("Edge(N1, N2) = %+v, %v", e, ok)
	}
}

func TestBuildInvalid(t *testing.T) {
	p := Example()
	p.Goal = "Z"
	if _, err := p.Build(); !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("Build() error = %v, want UNKNOWN_NODE", err)
	}
}

func TestWarnings(t *testing.T) {
	p := Example()
	p.Heuristic["E"] = 0

	w := p.Warnings()
	if len(w) != 1 {
		t.Fatalf("Warnings() = %v, want one warning", w)
	}
}
