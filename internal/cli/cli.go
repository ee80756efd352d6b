// Package cli implements the hillclimb command-line interface.
//
// The root command runs the interactive prompt flow: it asks for the nodes,
// edges, heuristic values and endpoints of a graph on stdin, runs the
// hill-climbing search and writes the two diagrams to disk. Other commands
// run the same pipeline from problem files or over HTTP.
//
// # Commands
//
//   - interactive: the prompt flow (also the default command)
//   - run: search a problem file
//   - render: draw a problem file, optionally with the path overlay
//   - example: print the built-in example problem
//   - serve: start the HTTP API
//   - cache: manage the artifact cache
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every search step.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/buildinfo"
	"github.com/matzehuels/hillclimb/pkg/cache"
	"github.com/matzehuels/hillclimb/pkg/observability"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "hillclimb"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// In and Out are the prompt streams of the interactive flow. Results
	// are printed to Out as well.
	In  io.Reader
	Out io.Writer

	// Err receives progress spinners.
	Err io.Writer

	verbose bool
}

// New creates a CLI that logs to w, prompts on stdin/stdout and draws
// spinners on stderr.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand it runs the interactive flow.
func (c *CLI) RootCommand() *cobra.Command {
	interactive := c.interactiveCommand()

	root := &cobra.Command{
		Use:           appName,
		Short:         "Hillclimb demonstrates hill-climbing search on small graphs",
		Long:          `Hillclimb reads a small undirected graph with a heuristic value per node, greedily walks from a start node towards a goal node, and draws the graph and the path it found.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          interactive.RunE,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetSearchHooks(hooks)
				observability.SetCacheHooks(hooks)
				observability.SetHTTPHooks(hooks)
			}
			return nil
		},
	}
	root.Flags().AddFlagSet(interactive.Flags())

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(interactive)
	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/hillclimb/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
