package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/problem"
)

const exampleAnswers = "A,B,C,D,E,F\nAB,AC,BD,BE,CF,DE,EF\n3\n2\n2\n3\n1\n0\n"

func TestPrompterGraph(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(context.Background(), strings.NewReader(exampleAnswers), &out)

	got, err := p.graph()
	if err != nil {
		t.Fatalf("graph() error: %v", err)
	}

	want := problem.Example()
	want.Start, want.Goal = "", ""
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("graph() mismatch (-want +got):\n%s", diff)
	}

	text := out.String()
	for _, prompt := range []string{promptNodes, promptEdges, "Ingrese la distancia heurística del nodo F: "} {
		if !strings.Contains(text, prompt) {
			t.Errorf("output missing prompt %q", prompt)
		}
	}
	if n := strings.Count(text, strings.Repeat("*", separatorWidth)+"\n"); n != 3 {
		t.Errorf("graph() printed %d separators, want 3", n)
	}
}

func TestPrompterLowercaseInput(t *testing.T) {
	p := newPrompter(context.Background(), strings.NewReader("a, b\nab\n1\n0\n"), &bytes.Buffer{})

	got, err := p.graph()
	if err != nil {
		t.Fatalf("graph() error: %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B"}, got.Nodes); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"AB"}, got.Edges); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}
}

func TestPrompterHeuristicRetry(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(context.Background(), strings.NewReader("A,B\nAB\nthree\n-1\n3\n0\n"), &out)

	got, err := p.graph()
	if err != nil {
		t.Fatalf("graph() error: %v", err)
	}
	if got.Heuristic["A"] != 3 {
		t.Errorf("Heuristic[A] = %v, want 3", got.Heuristic["A"])
	}
	if n := strings.Count(out.String(), "Ingrese la distancia heurística del nodo A: "); n != 3 {
		t.Errorf("heuristic for A asked %d times, want 3", n)
	}
}

func TestPrompterNoNodes(t *testing.T) {
	p := newPrompter(context.Background(), strings.NewReader("\n"), &bytes.Buffer{})
	if _, err := p.graph(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("graph() error = %v, want INVALID_INPUT", err)
	}
}

func TestPrompterEmptyNodeLabel(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(context.Background(), strings.NewReader("A,B,\nAB\n1\n0\n"), &out)

	if _, err := p.graph(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("graph() error = %v, want INVALID_INPUT for a trailing comma", err)
	}
	if strings.Contains(out.String(), promptEdges) {
		t.Error("edges should not be asked after an empty node label")
	}
	if strings.Contains(out.String(), "del nodo : ") {
		t.Error("heuristic asked for an empty node label")
	}
}

func TestPrompterCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p := newPrompter(ctx, r, io.Discard)
	defer p.close()

	done := make(chan error, 1)
	go func() {
		_, err := p.graph()
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("graph() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("graph() still blocked on input after cancel")
	}
}

func TestPrompterClosed(t *testing.T) {
	p := newPrompter(context.Background(), strings.NewReader("A\n"), io.Discard)
	p.close()
	p.close()
	if _, err := p.ask(promptNodes); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("ask() after close error = %v, want INTERNAL_ERROR", err)
	}
}

func TestPrompterEOF(t *testing.T) {
	p := newPrompter(context.Background(), strings.NewReader("A,B\nAB\n1\n"), &bytes.Buffer{})
	if _, err := p.graph(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("graph() error = %v, want INVALID_INPUT on early end of input", err)
	}
}

func TestPrompterEndpoints(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(context.Background(), strings.NewReader("z\na\n f \n"), &out)

	start, goal, err := p.endpoints([]string{"A", "F"})
	if err != nil {
		t.Fatalf("endpoints() error: %v", err)
	}
	if start != "A" || goal != "F" {
		t.Errorf("endpoints() = %q, %q, want A, F", start, goal)
	}
	if n := strings.Count(out.String(), promptStart); n != 2 {
		t.Errorf("start asked %d times, want 2", n)
	}
	if !strings.Contains(out.String(), `"Z"`) {
		t.Error("unknown start node should be reported")
	}
}
