package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/problem"
	"github.com/matzehuels/hillclimb/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	formats string
	engine  string
	path    bool // overlay the path to the goal
	noCache bool
}

// renderCommand creates the render command, which draws a problem file
// without printing a search result.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{formats: render.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the graph of a problem file",
		Long: `Draw the graph of a problem file as grafo_creado. With --path the search
runs first and the path to the goal is drawn in red as camino_encontrado.`,
		Example: `  hillclimb render problem.toml -f png
  hillclimb render problem.toml --path -f svg,pdf -o out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.renderFile(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output formats: svg, png, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", pipeline.DefaultEngine, "layout engine: neato, fdp, circo, dot")
	cmd.Flags().BoolVar(&opts.path, "path", false, "draw the path found by the search")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) renderFile(ctx context.Context, file string, opts renderOpts) error {
	prob, err := problem.ReadFile(file)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Formats: pipeline.ParseFormats(opts.formats),
		Engine:  opts.engine,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	base, dot := pipeline.GraphFileName, ""
	if opts.path {
		res, err := runner.Execute(ctx, prob, popts)
		if err != nil {
			return err
		}
		if !res.Walk.Found {
			return errors.New(errors.ErrCodeNotFound, "%s", res.Message)
		}
		base, dot = pipeline.PathFileName, pipeline.PathDOT(res.Graph, res.Path)
	} else {
		g, err := prob.Build()
		if err != nil {
			return err
		}
		dot = pipeline.GraphDOT(g)
	}

	spin := newSpinnerWithContext(ctx, c.Err, "Rendering "+base+"...")
	spin.Start()
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, dot, popts)
	if err != nil {
		spin.StopWithError("Could not render " + base)
		return err
	}
	spin.StopWithSuccess("Rendered " + base)

	paths, err := writeArtifacts(opts.output, base, artifacts)
	for _, p := range paths {
		printFile(c.Out, p)
	}
	if hit {
		printDetail(c.Out, "served from cache")
	}
	return err
}

// drawResult renders both diagrams of res with a spinner naming the one in
// progress, then writes whatever was rendered to dir. The search message is
// printed before this runs, so a render failure never hides it.
func (c *CLI) drawResult(ctx context.Context, runner *pipeline.Runner, res *pipeline.Result, opts pipeline.Options, dir string) error {
	spin := newSpinnerWithContext(ctx, c.Err, "Rendering...")
	spin.Start()
	opts.OnDiagram = func(name string) {
		spin.Update("Rendering " + name + "...")
	}
	renderErr := runner.RenderResult(ctx, res, opts)
	if renderErr != nil {
		spin.StopWithError("Could not render the diagrams")
	} else {
		spin.StopWithSuccess("Diagrams rendered")
	}

	paths, err := writeResult(dir, res)
	for _, p := range paths {
		printFile(c.Out, p)
	}
	if renderErr != nil {
		return renderErr
	}
	return err
}
