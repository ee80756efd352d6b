// Package pkg holds the libraries behind the hillclimb command.
//
// # Overview
//
// Hillclimb runs a greedy hill-climbing search over a small undirected graph
// whose nodes carry heuristic values, then draws the graph and the path it
// found. The packages are layered:
//
//  1. [graph] - the undirected graph with heuristic-weighted edges
//  2. [search] - the hill-climbing walk, free of I/O
//  3. [problem] - problem definitions, validation and JSON/TOML files
//  4. [render] - Graphviz diagrams and SVG conversion
//  5. [pipeline] - build → walk → render with caching
//  6. [server] - the HTTP API over the pipeline
//
// # Architecture
//
// The typical data flow:
//
//	prompt answers or problem file
//	         ↓
//	    [problem] (normalize + validate)
//	         ↓
//	    [graph] (nodes, edges, weights)
//	         ↓
//	    [search] (walk from start towards goal)
//	         ↓
//	    [render/nodelink] (grafo_creado, camino_encontrado)
//	         ↓
//	    SVG/PNG/PDF/DOT output
//
// # Quick Start
//
//	p := problem.Example()
//	g, _ := p.Build()
//	res, _ := search.Walk[string](g, p.Start, p.Goal, g.Heuristic)
//	fmt.Println(pipeline.Message(p.Start, p.Goal, res))
//
// Or run everything, including caching and drawing:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(ctx, problem.Example(), pipeline.Options{Render: true})
//
// # Supporting Packages
//
// [cache] - result and diagram caching (file, Redis, null backends).
//
// [errors] - coded errors shared by every layer.
//
// [observability] - hooks for logging or metrics around walks, renders,
// cache lookups and HTTP requests.
//
// [buildinfo] - version information set at build time.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/graph
// [search]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/search
// [problem]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/problem
// [render]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hillclimb/pkg/buildinfo
package pkg
