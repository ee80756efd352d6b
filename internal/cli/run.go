package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/problem"
	"github.com/matzehuels/hillclimb/pkg/render"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	output   string
	formats  string
	engine   string
	maxSteps int
	noRender bool
	noCache  bool
	refresh  bool
}

// runCommand creates the run command, which searches a problem file.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{formats: render.FormatSVG}

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Search a problem file and draw the result",
		Long: `Read a problem from a JSON or TOML file, run the hill-climbing search and
write the graph and path diagrams.

The file lists the nodes, edges, heuristic values and endpoints:

  nodes = ["A", "B", "C"]
  edges = ["AB", "BC"]
  start = "A"
  goal  = "C"

  [heuristic]
  A = 2
  B = 1
  C = 0

Print a complete example with "hillclimb example".`,
		Example: `  # Search and write SVG diagrams to the current directory
  hillclimb run problem.toml

  # PNG and PDF into out/
  hillclimb run problem.json -f png,pdf -o out

  # Only print the result
  hillclimb run problem.toml --no-render`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFile(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output formats: svg, png, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", pipeline.DefaultEngine, "layout engine: neato, fdp, circo, dot")
	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", 0, "maximum number of search steps (default 10000)")
	cmd.Flags().BoolVar(&opts.noRender, "no-render", false, "skip drawing, only print the result")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results and diagrams")

	return cmd
}

func (c *CLI) runFile(ctx context.Context, path string, opts runOpts) error {
	prob, err := problem.ReadFile(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		MaxSteps: opts.maxSteps,
		Formats:  pipeline.ParseFormats(opts.formats),
		Engine:   opts.engine,
		Refresh:  opts.refresh,
	}
	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, prob, popts)
	if err != nil {
		return err
	}
	prog.done("Search finished")

	fmt.Fprintln(c.Out, res.Message)
	printTrace(c.Out, res.Walk.Trace)
	printStats(c.Out, res.Stats.NodeCount, res.Stats.EdgeCount, res.CacheInfo.WalkHit)
	for _, w := range res.Warnings {
		printWarning(c.Out, "%s", w)
	}

	if opts.noRender {
		return nil
	}
	if err := c.drawResult(ctx, runner, res, popts, opts.output); err != nil {
		return err
	}
	if !res.Walk.Found {
		printNextStep(c.Out, "Draw the graph only", "hillclimb render "+path)
	}
	return nil
}
