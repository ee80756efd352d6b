package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/problem"
)

// Prompts of the interactive flow.
const (
	promptNodes     = "Ingrese los nodos del grafo separados por coma 'A,B,C,D,E,F': "
	promptEdges     = "Ingrese las aristas del grafo separadas por coma y sin espacios 'AB,AC,BD,BE,CF,DE,EF': "
	promptHeuristic = "Ingrese la distancia heurística del nodo %s: "
	promptStart     = "Ingrese el nodo de inicio: "
	promptGoal      = "Ingrese el nodo objetivo: "
)

// prompter reads answers line by line. Invalid heuristic values and unknown
// endpoints are asked again; end of input aborts the flow.
//
// Lines are scanned on a separate goroutine, one per request, so a cancelled
// context interrupts a pending question and nothing is read ahead of it.
type prompter struct {
	ctx     context.Context
	in      *bufio.Scanner
	out     io.Writer
	req     chan struct{}
	lines   chan scanned
	started bool
}

type scanned struct {
	text string
	ok   bool
	err  error
}

func newPrompter(ctx context.Context, in io.Reader, out io.Writer) *prompter {
	return &prompter{
		ctx:   ctx,
		in:    bufio.NewScanner(in),
		out:   out,
		req:   make(chan struct{}),
		lines: make(chan scanned, 1),
	}
}

func (p *prompter) scan(req <-chan struct{}) {
	for range req {
		ok := p.in.Scan()
		p.lines <- scanned{text: p.in.Text(), ok: ok, err: p.in.Err()}
	}
}

// close stops the scanning goroutine once its current read returns.
func (p *prompter) close() {
	if p.req != nil {
		close(p.req)
		p.req = nil
	}
}

// ask prints prompt and returns the next input line, or the context error if
// ctx is done first.
func (p *prompter) ask(prompt string) (string, error) {
	if p.req == nil {
		return "", errors.New(errors.ErrCodeInternal, "prompter is closed")
	}
	fmt.Fprint(p.out, prompt)

	if !p.started {
		p.started = true
		go p.scan(p.req)
	}
	select {
	case p.req <- struct{}{}:
	case <-p.ctx.Done():
		fmt.Fprintln(p.out)
		return "", p.ctx.Err()
	}

	var line scanned
	select {
	case line = <-p.lines:
	case <-p.ctx.Done():
		fmt.Fprintln(p.out)
		return "", p.ctx.Err()
	}
	if !line.ok {
		if line.err != nil {
			return "", line.err
		}
		fmt.Fprintln(p.out)
		return "", errors.New(errors.ErrCodeInvalidInput, "input ended before the graph was complete")
	}
	return strings.TrimRight(line.text, "\r"), nil
}

// graph asks for the node and edge lists, then one heuristic value per node.
// The returned problem has no endpoints yet.
func (p *prompter) graph() (problem.Problem, error) {
	var prob problem.Problem

	printSeparator(p.out)
	line, err := p.ask(promptNodes)
	if err != nil {
		return prob, err
	}
	prob.Nodes = problem.ParseList(line)
	if len(prob.Nodes) == 0 {
		return prob, errors.New(errors.ErrCodeInvalidInput, "at least one node is required")
	}
	for _, n := range prob.Nodes {
		if err := errors.ValidateLabel(n); err != nil {
			return prob, err
		}
	}

	line, err = p.ask(promptEdges)
	if err != nil {
		return prob, err
	}
	prob.Edges = problem.ParseList(line)
	printSeparator(p.out)

	prob.Heuristic = make(map[string]float64, len(prob.Nodes))
	for _, n := range prob.Nodes {
		if _, seen := prob.Heuristic[n]; seen {
			continue
		}
		v, err := p.heuristic(n)
		if err != nil {
			return prob, err
		}
		prob.Heuristic[n] = v
	}
	printSeparator(p.out)
	return prob, nil
}

func (p *prompter) heuristic(node string) (float64, error) {
	for {
		line, err := p.ask(fmt.Sprintf(promptHeuristic, node))
		if err != nil {
			return 0, err
		}
		v, err := problem.ParseHeuristic(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, errors.UserMessage(err))
	}
}

// endpoints asks for the start and goal nodes, repeating each question until
// the answer names one of nodes.
func (p *prompter) endpoints(nodes []string) (start, goal string, err error) {
	if start, err = p.node(promptStart, nodes); err != nil {
		return "", "", err
	}
	if goal, err = p.node(promptGoal, nodes); err != nil {
		return "", "", err
	}
	printSeparator(p.out)
	return start, goal, nil
}

func (p *prompter) node(prompt string, nodes []string) (string, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		id := strings.ToUpper(strings.TrimSpace(line))
		if slices.Contains(nodes, id) {
			return id, nil
		}
		fmt.Fprintf(p.out, "El nodo %q no existe; opciones: %s\n", id, strings.Join(nodes, ", "))
	}
}
