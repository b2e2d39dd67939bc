package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/classtower/pkg/pipeline"
)

// extractCommand creates the extract command: extraction without drawing.
func (c *CLI) extractCommand() *cobra.Command {
	var opts sourceOptions

	cmd := &cobra.Command{
		Use:   "extract [paths...]",
		Short: "Print the extracted classes without drawing",
		Long: `Extract the class hierarchy and print one block per class: its qualified
name followed by its methods, fields and bases.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, args, c.config)
			return c.runExtract(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) runExtract(ctx context.Context, stdout io.Writer, o *sourceOptions) error {
	prog, filter, err := c.load(ctx, o)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(loggerFromContext(ctx))
	if !o.quiet {
		runner.Diagnostics = stdout
	}
	_, stats := runner.Extract(ctx, prog, filter)
	printStats(stdout, stats)
	return nil
}
