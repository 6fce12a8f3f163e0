package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattica/lattica/pkg/graphio"
	"github.com/lattica/lattica/pkg/layout"
)

// newDotCmd creates the "dot" command.
func newDotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dot <graph.json>",
		Short: "Export a JSON graph in DOT syntax",
		Long: `Dot converts a JSON graph file into DOT syntax for use with external
graphviz tooling. Vertices are named n0, n1, ... in index order; a vertex's
"name" attribute becomes its label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ImportGraph(args[0])
			if err != nil {
				return err
			}
			dot := layout.ToDOT(g)
			if output != "" {
				return os.WriteFile(output, []byte(dot), 0o644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
