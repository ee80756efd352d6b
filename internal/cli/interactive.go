package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/problem"
	"github.com/matzehuels/hillclimb/pkg/render"
)

// interactiveOpts holds the flags of the prompt flow.
type interactiveOpts struct {
	output   string // directory for the diagrams
	formats  string // comma-separated output formats
	engine   string // Graphviz layout engine
	maxSteps int    // walk step limit
	noCache  bool   // disable caching
	tui      bool   // pick start and goal from a list
	table    bool   // print node and edge tables before searching
}

// interactiveCommand creates the prompt flow command. Its RunE is also the
// root command's default action.
func (c *CLI) interactiveCommand() *cobra.Command {
	opts := interactiveOpts{formats: render.FormatPNG}

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Enter a graph at the prompt and search it",
		Long: `Prompt for the nodes, edges and heuristic values of a graph, then for the
start and goal nodes. The search result is printed and the diagrams
grafo_creado and camino_encontrado are written to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output formats: svg, png, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", pipeline.DefaultEngine, "layout engine: neato, fdp, circo, dot")
	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", 0, "maximum number of search steps (default 10000)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "choose start and goal nodes from a list")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print the graph as tables before searching")

	return cmd
}

func (c *CLI) runInteractive(ctx context.Context, opts interactiveOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	pr := newPrompter(ctx, c.In, c.Out)
	defer pr.close()

	prob, err := pr.graph()
	if err != nil {
		return err
	}

	if opts.tui {
		prob.Start, prob.Goal, err = c.pickEndpoints(ctx, prob)
	} else {
		prob.Start, prob.Goal, err = pr.endpoints(prob.Nodes)
	}
	if err != nil {
		return err
	}

	if opts.table {
		if g, err := prob.Build(); err == nil {
			fmt.Fprintln(c.Out, graphTable(g))
		}
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
	}
	res, err := runner.Execute(ctx, prob, popts)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Out, res.Message)
	return c.drawResult(ctx, runner, res, popts, opts.output)
}

// pickEndpoints runs the node picker on the terminal.
func (c *CLI) pickEndpoints(ctx context.Context, prob problem.Problem) (string, string, error) {
	choices := make([]NodeChoice, len(prob.Nodes))
	for i, n := range prob.Nodes {
		choices[i] = NodeChoice{ID: n, Heuristic: prob.Heuristic[n]}
	}

	final, err := tea.NewProgram(NewNodePickerModel(choices), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}
		return "", "", fmt.Errorf("node picker: %w", err)
	}
	m := final.(NodePickerModel)
	if !m.Done() {
		return "", "", errors.New(errors.ErrCodeMissingEndpoint, "no start or goal node selected")
	}
	printSeparator(c.Out)
	return m.Start, m.Goal, nil
}
