package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lattica/lattica/pkg/buildinfo"
)

// Execute runs the lattica CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (compute, edges,
// paths, dot, cache), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "lattica",
		Short:        "Lattica computes 2-D layouts for graphs",
		Long:         `Lattica is a CLI tool for placing the vertices of a graph in the plane: dendrograms, treemaps, hive plots, linear and circular orderings, force-directed embeddings, and the graphviz engines.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newComputeCmd())
	root.AddCommand(newEdgesCmd())
	root.AddCommand(newPathsCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
