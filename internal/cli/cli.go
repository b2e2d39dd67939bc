// Package cli implements the classtower command-line interface.
//
// # Commands
//
//   - diagram: extract the class hierarchy and write both diagrams
//   - extract: extract only and print the diagnostic stream
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Settings are read from .classtower.toml in the working directory, or
// from the file named by --config, and overridden by command-line flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and handed to providers, the
// extractor and the backends explicitly.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/classtower/pkg/buildinfo"
)

// appName is the application name used in help texts.
const appName = "classtower"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     Config
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The configuration file is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Classtower draws the class hierarchy of a codebase",
		Long: `Classtower extracts the inheritance hierarchy of the classes declared under a
project root and draws it twice: as a layered UML class diagram and as a
Graphviz node-link graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+configFileName+" if present)")

	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.completionCommand())

	return root
}
