package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graphio"
)

// edgeLine is one printed edge with the endpoint coordinates joined in, so
// drawing tools need only this output.
type edgeLine struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Circular bool    `json:"circular"`
}

// newEdgesCmd creates the "edges" command.
func newEdgesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "edges <layout.json>",
		Short: "Extract the edge list of a computed layout",
		Long: `Edges reads a layout document and prints one record per edge of the
embedded graph, with the placed endpoint coordinates joined in by index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, err := readLayoutFile(args[0])
			if err != nil {
				return err
			}
			if doc.Graph == nil {
				return errors.New(errors.ErrCodeInvalidInput, "layout document has no embedded graph")
			}

			lines := make([]edgeLine, 0, len(doc.Graph.Edges))
			for _, e := range doc.Graph.Edges {
				if e.From < 0 || e.From >= len(doc.Rows) || e.To < 0 || e.To >= len(doc.Rows) {
					return errors.New(errors.ErrCodeInvalidInput,
						"edge %d->%d references a missing row", e.From, e.To)
				}
				lines = append(lines, edgeLine{
					From: e.From, To: e.To,
					X1: doc.Rows[e.From].X, Y1: doc.Rows[e.From].Y,
					X2: doc.Rows[e.To].X, Y2: doc.Rows[e.To].Y,
					Circular: doc.Circular,
				})
			}
			logger.Debug("extracted edges", "count", len(lines))

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(lines)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// readLayoutFile loads a layout document from disk.
func readLayoutFile(path string) (*graphio.LayoutDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "opening %s", path)
	}
	defer f.Close()
	return graphio.ReadLayout(f)
}
