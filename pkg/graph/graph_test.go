package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// exampleGraph builds the A..F graph used throughout the package tests.
func exampleGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, n := range []Node{{"A", 3}, {"B", 2}, {"C", 2}, {"D", 3}, {"E", 1}, {"F", 0}} {
		if err := g.AddNode(n.ID, n.Heuristic); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	for _, e := range []string{"AB", "AC", "BD", "BE", "CF", "DE", "EF"} {
		if _, err := g.AddEdge(e[:1], e[1:]); err != nil {
			t.Fatalf("AddEdge(%s): %v", e, err)
		}
	}
	return g
}

func TestAddNode(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		h       float64
		wantErr error
	}{
		{"valid", "A", 3, nil},
		{"zero heuristic", "F", 0, nil},
		{"empty id", "", 1, ErrInvalidNodeID},
		{"negative", "X", -1, ErrInvalidHeuristic},
		{"nan", "Y", math.NaN(), ErrInvalidHeuristic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			err := g.AddNode(tt.id, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddNode(%q, %v) error = %v, want %v", tt.id, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestAddNodeDuplicate(t *testing.T) {
	g := New()
	if err := g.AddNode("A", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode("A", 2); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate AddNode error = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := New()
	_ = g.AddNode("A", 1)

	if _, err := g.AddEdge("A", "Z"); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("AddEdge(A, Z) error = %v, want ErrUnknownEndpoint", err)
	}
	if _, err := g.AddEdge("Z", "A"); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("AddEdge(Z, A) error = %v, want ErrUnknownEndpoint", err)
	}
	if _, err := g.AddEdge("A", "A"); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("AddEdge(A, A) error = %v, want ErrSelfLoop", err)
	}
}

func TestAddEdgeDeduplicates(t *testing.T) {
	g := New()
	_ = g.AddNode("A", 1)
	_ = g.AddNode("B", 2)

	first, _ := g.AddEdge("A", "B")
	second, err := g.AddEdge("B", "A")
	if err != nil {
		t.Fatalf("AddEdge(B, A): %v", err)
	}
	if first != second {
		t.Errorf("reverse edge = %+v, want existing %+v", second, first)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if got := g.Neighbors("A"); len(got) != 1 {
		t.Errorf("Neighbors(A) = %v, want single neighbor", got)
	}
}

func TestEdgeWeightIsHeuristicSum(t *testing.T) {
	g := exampleGraph(t)
	for _, e := range g.Edges() {
		ha, _ := g.Heuristic(e.A)
		hb, _ := g.Heuristic(e.B)
		if e.Weight != ha+hb {
			t.Errorf("edge %s-%s weight = %v, want %v", e.A, e.B, e.Weight, ha+hb)
		}
	}
}

func TestNeighborsFollowEdgeOrder(t *testing.T) {
	g := exampleGraph(t)

	want := map[string][]string{
		"A": {"B", "C"},
		"B": {"A", "D", "E"},
		"C": {"A", "F"},
		"D": {"B", "E"},
		"E": {"B", "D", "F"},
		"F": {"C", "E"},
	}
	for id, w := range want {
		if diff := cmp.Diff(w, g.Neighbors(id)); diff != "" {
			t.Errorf("Neighbors(%s) mismatch (-want +got):\n%s", id, diff)
		}
	}
	if g.Neighbors("nope") != nil {
		t.Error("Neighbors of unknown node should be nil")
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := exampleGraph(t)
	want := []string{"A", "B", "C", "D", "E", "F"}
	if diff := cmp.Diff(want, g.NodeIDs()); diff != "" {
		t.Errorf("NodeIDs() mismatch (-want +got):\n%s", diff)
	}
	if g.NodeCount() != 6 || g.EdgeCount() != 7 {
		t.Errorf("counts = %d nodes, %d edges, want 6, 7", g.NodeCount(), g.EdgeCount())
	}
}

func TestEdgeLookup(t *testing.T) {
	g := exampleGraph(t)

	e, ok := g.Edge("F", "C")
	if !ok {
		t.Fatal("Edge(F, C) not found")
	}
	if e.A != "C" || e.B != "F" || e.Weight != 2 {
		t.Errorf("Edge(F, C) = %+v", e)
	}
	if e.Other("C") != "F" || !e.Has("F") {
		t.Errorf("Other/Has mismatch on %+v", e)
	}
	if _, ok := g.Edge("A", "F"); ok {
		t.Error("Edge(A, F) should not exist")
	}
}

func TestNodeLookup(t *testing.T) {
	g := exampleGraph(t)

	n, ok := g.Node("E")
	if !ok || n.Heuristic != 1 {
		t.Errorf("Node(E) = %+v, %v", n, ok)
	}
	if _, ok := g.Node("Z"); ok {
		t.Error("Node(Z) should not exist")
	}
	if _, ok := g.Heuristic("Z"); ok {
		t.Error("Heuristic(Z) should report missing")
	}
	if g.Degree("B") != 3 {
		t.Errorf("Degree(B) = %d, want 3", g.Degree("B"))
	}
}
