package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/problem"
)

// exampleCommand creates the example command, which prints the built-in
// demonstration problem as a starting point for problem files.
func (c *CLI) exampleCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the built-in example problem",
		Long: `Print the demonstration graph (nodes A to F, searched from A to F) as a
problem file. Use it as a template for "hillclimb run".`,
		Example: `  hillclimb example > problem.json
  hillclimb example -f toml -o problem.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, problem.FormatJSON, problem.FormatTOML); err != nil {
				return err
			}
			if output == "" {
				return problem.Write(c.Out, problem.Example(), format)
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", output)
			}
			defer f.Close()
			if err := problem.Write(f, problem.Example(), format); err != nil {
				return err
			}
			printSuccess(c.Out, "Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", problem.FormatJSON, "file format: json or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
