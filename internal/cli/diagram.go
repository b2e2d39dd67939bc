package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/pipeline"
	"github.com/matzehuels/classtower/pkg/render/nodelink"
	"github.com/matzehuels/classtower/pkg/render/uml"
)

type diagramOptions struct {
	sourceOptions
	umlOut    string
	graphOut  string
	edgeLabel string
	noUML     bool
	noGraph   bool
}

// diagramCommand creates the diagram command, the full pipeline.
func (c *CLI) diagramCommand() *cobra.Command {
	var opts diagramOptions

	cmd := &cobra.Command{
		Use:   "diagram [paths...]",
		Short: "Extract the class hierarchy and draw it",
		Long: `Extract the class hierarchy of the given source paths and draw it twice:
a layered UML class diagram and a Graphviz node-link graph.

Paths default to the "sources" entry of the config file, then to the
current directory. Only classes declared under --root become nodes; bases
declared elsewhere are reported as external.`,
		Example: `  classtower diagram --root src src
  classtower diagram --lang go --root . ./...
  classtower diagram -I /usr/include/mylib --uml-out docs/uml.svg src`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, args, c.config)
			opts.mergeOutput(cmd, c.config.Output)
			return c.runDiagram(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.umlOut, "uml-out", pipeline.DefaultUMLOutput, "UML diagram output file")
	cmd.Flags().StringVar(&opts.graphOut, "graph-out", pipeline.DefaultGraphOutput, "graph diagram output file")
	cmd.Flags().StringVar(&opts.edgeLabel, "edge-label", nodelink.DefaultEdgeLabel, "label of graph diagram edges")
	cmd.Flags().BoolVar(&opts.noUML, "no-uml", false, "skip the UML diagram")
	cmd.Flags().BoolVar(&opts.noGraph, "no-graph", false, "skip the graph diagram")

	return cmd
}

func (o *diagramOptions) mergeOutput(cmd *cobra.Command, out OutputConfig) {
	changed := cmd.Flags().Changed
	if !changed("uml-out") && out.UML != "" {
		o.umlOut = out.UML
	}
	if !changed("graph-out") && out.Graph != "" {
		o.graphOut = out.Graph
	}
	if !changed("edge-label") && out.EdgeLabel != "" {
		o.edgeLabel = out.EdgeLabel
	}
}

func (c *CLI) targets(o *diagramOptions) ([]pipeline.Target, error) {
	logger := c.Logger
	var targets []pipeline.Target
	if !o.noUML {
		targets = append(targets, pipeline.Target{
			Backend: uml.New(uml.WithLogger(logger)),
			Path:    o.umlOut,
		})
	}
	if !o.noGraph {
		targets = append(targets, pipeline.Target{
			Backend: nodelink.New(nodelink.WithEdgeLabel(o.edgeLabel), nodelink.WithLogger(logger)),
			Path:    o.graphOut,
		})
	}
	if len(targets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--no-uml and --no-graph leave nothing to draw")
	}
	return targets, pipeline.ValidateTargets(targets)
}

func (c *CLI) runDiagram(ctx context.Context, stdout io.Writer, o *diagramOptions) error {
	targets, err := c.targets(o)
	if err != nil {
		return err
	}

	prog, filter, err := c.load(ctx, &o.sourceOptions)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(loggerFromContext(ctx), targets...)
	if !o.quiet {
		runner.Diagnostics = stdout
	}

	spinner := newSpinnerWithContext(ctx, os.Stderr, "Drawing class hierarchy...")
	spinner.Start()
	result, err := runner.Run(ctx, prog, filter)
	spinner.Stop()

	if result != nil {
		printSummary(stdout, result, targets)
	}
	return err
}
