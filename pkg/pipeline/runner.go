package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hillclimb/pkg/cache"
	"github.com/matzehuels/hillclimb/pkg/graph"
	"github.com/matzehuels/hillclimb/pkg/observability"
	"github.com/matzehuels/hillclimb/pkg/problem"
	"github.com/matzehuels/hillclimb/pkg/search"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-run state, so one Runner can serve concurrent
// requests as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means cache.NewDefaultKeyer, a nil
// cache disables caching and a nil logger means log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs build → walk → render for p.
//
// A walk that stops on a local optimum is a successful run: Result.Walk.Found
// is false and err is nil. Errors are *errors.Error values carrying an input,
// step-limit or internal code. A render failure still returns the result of
// the search, with Message set, alongside the error.
func (r *Runner) Execute(ctx context.Context, p problem.Problem, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	p = p.Normalize()
	g, err := p.Build()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Problem:  p,
		Graph:    g,
		Warnings: p.Warnings(),
	}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	for _, w := range result.Warnings {
		logger.Warn(w)
	}

	logger.Info("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())

	// Stage 2: Walk
	walkStart := time.Now()
	observability.Search().OnWalkStart(ctx, p.Start, p.Goal)
	res, hit, err := r.WalkWithCacheInfo(ctx, p, g, opts)
	result.Stats.WalkTime = time.Since(walkStart)
	observability.Search().OnWalkComplete(ctx, res.Found, res.Steps, result.Stats.WalkTime, err)
	if err != nil {
		return nil, err
	}
	result.Walk = res
	result.CacheInfo.WalkHit = hit
	result.Message = Message(p.Start, p.Goal, res)

	if res.Found {
		result.Path, _ = g.ShortestPath(p.Start, p.Goal)
	}

	logger.Info("walk finished",
		"found", res.Found,
		"steps", res.Steps,
		"duration", result.Stats.WalkTime)
	logger.Debug("greedy trace", "trace", res.Trace, "overlay", result.Path)

	if !opts.Render {
		return result, nil
	}
	if err := r.RenderResult(ctx, result, opts); err != nil {
		return result, err
	}
	return result, nil
}

// RenderResult runs the render stage for a result returned by Execute,
// filling in Artifacts, Stats.RenderTime and CacheInfo.RenderHit. On error
// the diagrams rendered before the failure are kept in Artifacts.
func (r *Runner) RenderResult(ctx context.Context, result *Result, opts Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	logger := r.logger(opts)

	renderStart := time.Now()
	observability.Search().OnRenderStart(ctx, opts.Formats)
	artifacts, hit, err := r.renderAll(ctx, result.Graph, result.Path, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Search().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	result.Artifacts = artifacts
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	result.CacheInfo.RenderHit = hit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return nil
}

func (r *Runner) renderAll(ctx context.Context, g *graph.Graph, path []string, opts Options) (Artifacts, bool, error) {
	var out Artifacts
	if opts.OnDiagram != nil {
		opts.OnDiagram(GraphFileName)
	}
	graphArt, graphHit, err := r.RenderWithCacheInfo(ctx, GraphDOT(g), opts)
	if err != nil {
		return out, false, err
	}
	out.Graph = graphArt
	if path == nil {
		return out, graphHit, nil
	}

	if opts.OnDiagram != nil {
		opts.OnDiagram(PathFileName)
	}
	pathArt, pathHit, err := r.RenderWithCacheInfo(ctx, PathDOT(g, path), opts)
	if err != nil {
		return out, false, err
	}
	out.Path = pathArt
	return out, graphHit && pathHit, nil
}

// walkRecord is the cached form of a walk result. Its fields mirror
// search.Result[string] so the two convert directly.
type walkRecord struct {
	Node  string   `json:"node"`
	Found bool     `json:"found"`
	Steps int      `json:"steps"`
	Trace []string `json:"trace"`
}

// WalkWithCacheInfo runs the walk for a normalized, valid problem, using the
// cached result when one exists. The bool reports a cache hit.
func (r *Runner) WalkWithCacheInfo(ctx context.Context, p problem.Problem, g *graph.Graph, opts Options) (search.Result[string], bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return search.Result[string]{}, false, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return search.Result[string]{}, false, fmt.Errorf("serialize problem for cache key: %w", err)
	}
	cacheKey := r.Keyer.ResultKey(cache.Hash(data), cache.ResultKeyOpts{MaxSteps: opts.MaxSteps})

	if !opts.Refresh {
		if raw, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var rec walkRecord
			if err := json.Unmarshal(raw, &rec); err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				return search.Result[string](rec), true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	res, err := Walk(g, p.Start, p.Goal, opts.MaxSteps, r.logger(opts))
	if err != nil {
		return res, false, err
	}

	if raw, err := json.Marshal(walkRecord(res)); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, raw, cache.TTLResult); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "result", len(raw))
		}
	}
	return res, false, nil
}

// RenderWithCacheInfo renders dot in every requested format, reusing cached
// artifacts. The bool reports whether every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, dot string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	dotHash := cache.Hash([]byte(dot))

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(dotHash, cache.ArtifactKeyOpts{Format: format, Engine: opts.Engine})
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	rendered, err := Render(ctx, dot, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(dotHash, cache.ArtifactKeyOpts{Format: format, Engine: opts.Engine})
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
