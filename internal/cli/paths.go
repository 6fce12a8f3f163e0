package cli

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graphio"
)

// pathResult is one printed shortest path.
type pathResult struct {
	From int   `json:"from"`
	To   int   `json:"to"`
	Path []int `json:"path"` // null when the pair is unreachable
}

// newPathsCmd creates the "paths" command.
func newPathsCmd() *cobra.Command {
	var weight string

	cmd := &cobra.Command{
		Use:   "paths <layout.json> <from:to> [from:to ...]",
		Short: "Find shortest paths between placed vertices",
		Long: `Paths reads a layout document and reports, for each from:to pair of row
indices, the shortest path through the embedded graph. With --weight the
traversal cost is the named numeric row attribute of each vertex entered;
otherwise every hop costs one.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readLayoutFile(args[0])
			if err != nil {
				return err
			}
			table, err := graphio.FromLayoutDoc(doc)
			if err != nil {
				return err
			}

			pairs, err := parsePairs(args[1:])
			if err != nil {
				return err
			}
			paths, err := table.Paths(pairs, weight)
			if err != nil {
				return err
			}

			results := make([]pathResult, len(pairs))
			for i, pair := range pairs {
				results[i] = pathResult{From: pair[0], To: pair[1], Path: paths[i]}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}

	cmd.Flags().StringVar(&weight, "weight", "", "numeric row attribute used as traversal cost")
	return cmd
}

// parsePairs parses from:to endpoint pairs.
func parsePairs(args []string) ([][2]int, error) {
	pairs := make([][2]int, len(args))
	for i, arg := range args {
		from, to, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pair %q must have the form from:to", arg)
		}
		f, err := strconv.Atoi(from)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pair %q: %q is not an index", arg, from)
		}
		t, err := strconv.Atoi(to)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pair %q: %q is not an index", arg, to)
		}
		pairs[i] = [2]int{f, t}
	}
	return pairs, nil
}
