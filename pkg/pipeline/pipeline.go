// Package pipeline runs a hill-climbing problem end to end.
//
// This package implements the build → walk → render pipeline shared by the
// CLI and the HTTP server, so both report the same messages and produce the
// same images for the same input.
//
// # Stages
//
//  1. Build: normalize and validate the problem, construct the graph
//  2. Walk: run the hill-climbing search and compute the overlay path
//  3. Render: draw the graph, and on success the graph with the path
//
// Walk results and rendered artifacts are cached through a [cache.Cache].
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, problem.Example(), pipeline.Options{
//	    Formats: []string{"svg"},
//	    Render:  true,
//	})
//	fmt.Println(res.Message)
//	svg := res.Artifacts.Graph["svg"]
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/graph"
	"github.com/matzehuels/hillclimb/pkg/problem"
	"github.com/matzehuels/hillclimb/pkg/render"
	"github.com/matzehuels/hillclimb/pkg/render/nodelink"
	"github.com/matzehuels/hillclimb/pkg/search"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Output names and titles of the two diagrams.
const (
	GraphFileName = "grafo_creado"
	PathFileName  = "camino_encontrado"

	GraphTitle = "Grafo dibujado"
	PathTitle  = "Grafo con el camino encontrado"
)

// DefaultEngine is the default Graphviz layout engine.
const DefaultEngine = nodelink.EngineNeato

// ValidFormats is the set of supported output formats.
var ValidFormats = render.Formats

// ValidEngines is the set of supported layout engines.
var ValidEngines = []string{nodelink.EngineNeato, nodelink.EngineFDP, nodelink.EngineCirco, nodelink.EngineDot}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It supports JSON for API requests.
type Options struct {
	// MaxSteps bounds the walk. Zero means search.DefaultMaxSteps.
	MaxSteps int `json:"max_steps,omitempty"`

	// Render enables the render stage.
	Render bool `json:"render,omitempty"`

	// Formats lists the output formats. Defaults to svg.
	Formats []string `json:"formats,omitempty"`

	// Engine is the Graphviz layout engine. Defaults to neato.
	Engine string `json:"engine,omitempty"`

	// Refresh bypasses cached walk results and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// OnDiagram, if set, is called with the file name of each diagram
	// before it is rendered.
	OnDiagram func(name string) `json:"-"`

	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.MaxSteps < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max steps must not be negative, got %d", o.MaxSteps)
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = search.DefaultMaxSteps
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	return errors.ValidateFormat(o.Engine, ValidEngines...)
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats...)
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Problem is the normalized input.
	Problem problem.Problem

	// Graph is the graph built from Problem.
	Graph *graph.Graph

	// Walk is the raw search outcome.
	Walk search.Result[string]

	// Path is the breadth-first path from start to goal drawn on the second
	// diagram. It is nil when the walk did not reach the goal.
	Path []string

	// Message is the human-readable outcome.
	Message string

	// Warnings lists input problems that did not stop the run.
	Warnings []string

	// Artifacts holds rendered diagrams when Options.Render is set.
	Artifacts Artifacts

	Stats     Stats
	CacheInfo CacheInfo
}

// Artifacts maps format to bytes for each diagram. Path is empty when the
// walk failed.
type Artifacts struct {
	Graph map[string][]byte
	Path  map[string][]byte
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	WalkTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	WalkHit   bool // walk result came from cache
	RenderHit bool // every artifact came from cache
}

// =============================================================================
// Messages
// =============================================================================

// Message formats the outcome of a walk for display.
func Message(start, goal string, res search.Result[string]) string {
	if res.Found {
		return fmt.Sprintf("Se encontró el nodo objetivo %s partiendo del nodo %s y siguiendo el camino %s -> %s -> %s",
			goal, start, start, res.Node, goal)
	}
	return fmt.Sprintf("No se pudo encontrar el nodo objetivo %s partiendo del nodo %s", goal, start)
}

// FileName returns the output file name for a diagram and format.
func FileName(base, format string) string {
	return base + "." + format
}
