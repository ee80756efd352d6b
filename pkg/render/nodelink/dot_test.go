package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/graph"
	"github.com/matzehuels/hillclimb/pkg/render"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, n := range []graph.Node{{ID: "A", Heuristic: 3}, {ID: "C", Heuristic: 2}, {ID: "F", Heuristic: 0}, {ID: "E", Heuristic: 0.5}} {
		if err := g.AddNode(n.ID, n.Heuristic); err != nil {
			t.Fatal(err)
		}
	}
	for _, pair := range [][2]string{{"A", "C"}, {"C", "F"}, {"E", "F"}} {
		if _, err := g.AddEdge(pair[0], pair[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing undirected graph declaration")
	}
	for _, want := range []string{`"A" [label="A"]`, `"A" -- "C" [label="5"]`, `"C" -- "F" [label="2"]`, `"E" -- "F" [label="0.5"]`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(dot, "penwidth") {
		t.Error("ToDOT() without path should not highlight edges")
	}
	if strings.Contains(dot, "labelloc") {
		t.Error("ToDOT() without title should not set a graph label")
	}
}

func TestToDOT_Title(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Title: "Grafo dibujado"})

	if !strings.Contains(dot, `label="Grafo dibujado"`) {
		t.Error("ToDOT() output missing title")
	}
}

func TestToDOT_Path(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Path: []string{"A", "C", "F"}, Goal: "F"})

	if !strings.Contains(dot, `"A" -- "C" [label="5", color="red", penwidth=2]`) {
		t.Errorf("ToDOT() path edge A-C not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"C" -- "F" [label="2", color="red", penwidth=2]`) {
		t.Errorf("ToDOT() path edge C-F not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"E" -- "F" [label="0.5"];`) {
		t.Errorf("ToDOT() off-path edge should not be highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"F" [label="F", shape=doublecircle]`) {
		t.Errorf("ToDOT() goal should be double-circled:\n%s", dot)
	}
}

func TestToDOT_PathReversed(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Path: []string{"F", "C"}, Highlight: "orange"})

	if !strings.Contains(dot, `"C" -- "F" [label="2", color="orange", penwidth=2]`) {
		t.Errorf("ToDOT() reversed path edge not highlighted:\n%s", dot)
	}
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{0, "0"},
		{2.5, "2.5"},
		{10, "10"},
	}
	for _, tt := range tests {
		if got := FormatWeight(tt.in); got != tt.want {
			t.Errorf("FormatWeight(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})
	out, err := Render(context.Background(), dot, "", render.FormatDOT)
	if err != nil {
		t.Fatalf("Render(dot) error: %v", err)
	}
	if string(out) != dot {
		t.Error("Render(dot) should return the source unchanged")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(context.Background(), "graph G {}", "", "gif"); err == nil {
		t.Error("Render() should reject unknown formats")
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Title: "Grafo dibujado"})
	svg, err := RenderSVG(context.Background(), dot, EngineNeato)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`, "")
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderPNG(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Title: "Grafo dibujado"})
	png, err := RenderPNG(context.Background(), dot, EngineNeato)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("RenderPNG() output is not a PNG image")
	}
}

func TestRenderWithoutRSVG(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	dot := ToDOT(testGraph(t), Options{})

	png, err := Render(context.Background(), dot, "", render.FormatPNG)
	if err != nil {
		t.Fatalf("Render(png) without rsvg-convert error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("Render(png) output is not a PNG image")
	}

	_, err = Render(context.Background(), dot, "", render.FormatPDF)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Render(pdf) without rsvg-convert error = %v, want UNSUPPORTED", err)
	}
}
