package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lattica/lattica/pkg/cache"
	"github.com/lattica/lattica/pkg/graphio"
	"github.com/lattica/lattica/pkg/layout"
	"github.com/lattica/lattica/pkg/pipeline"
)

// computeFlags holds every layout option exposed as a flag, mirroring
// layout.Options. Only flags the user actually changed override the option
// file, so file and flags can be combined freely.
type computeFlags struct {
	algorithm   string
	optionsFile string
	output      string
	cacheTarget string
	noCache     bool
	refresh     bool

	circular     bool
	mode         string
	sortBy       string
	useNumeric   bool
	weight       string
	offset       float64
	width        float64
	height       float64
	axis         string
	section      string
	sectionOrder []string
	normalizeAll bool
	centerGap    float64
	sectionGap   float64
	split        string
	splitAngle   float64
	updates      int
}

// newComputeCmd creates the "compute" command.
func newComputeCmd() *cobra.Command {
	var flags computeFlags

	cmd := &cobra.Command{
		Use:   "compute <graph.json>",
		Short: "Run a layout algorithm over a JSON graph file",
		Long: `Compute places the vertices of a JSON graph in the plane and writes the
resulting layout document to stdout or a file.

Options can come from a TOML file (--options) and from flags; flags win over
the file for any option set in both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			opts, err := resolveOptions(cmd, flags)
			if err != nil {
				return err
			}

			c, err := openCache(cmd.Context(), flags.cacheTarget, flags.noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(c, logger)
			defer runner.Close()

			prog := newProgress(logger)
			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Input:     args[0],
				Algorithm: flags.algorithm,
				Layout:    opts,
				Refresh:   flags.refresh,
				Logger:    logger,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Placed %d vertices with %s", len(result.Layout.Rows), result.Layout.Algorithm))

			if flags.output != "" {
				if err := pipeline.WriteLayoutFile(result.Layout, flags.output); err != nil {
					return err
				}
				logger.Info("wrote layout", "path", flags.output)
				return nil
			}
			return writeLayoutTo(cmd.OutOrStdout(), result.Layout)
		},
	}

	cmd.Flags().StringVarP(&flags.algorithm, "layout", "l", "linear", "layout algorithm name")
	cmd.Flags().StringVar(&flags.optionsFile, "options", "", "TOML option file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&flags.cacheTarget, "cache", "", "cache target: directory, redis://, mongodb://, or none")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even when cached")

	cmd.Flags().BoolVar(&flags.circular, "circular", false, "polar form of the layout")
	cmd.Flags().StringVar(&flags.mode, "mode", layout.ModeOut, "edge direction: out (parent→child) or in")
	cmd.Flags().StringVar(&flags.sortBy, "sort-by", "", "vertex attribute used as ordering key")
	cmd.Flags().BoolVar(&flags.useNumeric, "use-numeric", false, "place at raw numeric sort values instead of ranks")
	cmd.Flags().StringVar(&flags.weight, "weight", "", "numeric vertex attribute used as leaf weight")
	cmd.Flags().Float64Var(&flags.offset, "offset", 0, "angular offset in radians")
	cmd.Flags().Float64Var(&flags.width, "width", 1, "treemap rectangle width")
	cmd.Flags().Float64Var(&flags.height, "height", 1, "treemap rectangle height")
	cmd.Flags().StringVar(&flags.axis, "axis", "", "categorical attribute assigning hive axes")
	cmd.Flags().StringVar(&flags.section, "section", "", "categorical attribute subdividing hive axes")
	cmd.Flags().StringSliceVar(&flags.sectionOrder, "section-order", nil, "explicit order of section levels")
	cmd.Flags().BoolVar(&flags.normalizeAll, "normalize-all", false, "normalize numeric radial keys over all vertices")
	cmd.Flags().Float64Var(&flags.centerGap, "center-gap", 0, "radial gap before the first hive vertex")
	cmd.Flags().Float64Var(&flags.sectionGap, "section-gap", 0, "radial gap between hive sections")
	cmd.Flags().StringVar(&flags.split, "split", layout.SplitNone, "hive axis splitting: none, all, or loops")
	cmd.Flags().Float64Var(&flags.splitAngle, "split-angle", 0, "angular separation of split axis halves")
	cmd.Flags().IntVar(&flags.updates, "updates", 0, "iteration bound for force-directed layouts")

	return cmd
}

// resolveOptions layers the option sources: defaults, then the TOML file,
// then any flag the user explicitly set.
func resolveOptions(cmd *cobra.Command, flags computeFlags) (layout.Options, error) {
	opts := layout.DefaultOptions()
	if flags.optionsFile != "" {
		fileOpts, err := graphio.ReadOptionsFile(flags.optionsFile)
		if err != nil {
			return opts, err
		}
		opts = fileOpts
	}

	set := cmd.Flags().Changed
	if set("circular") {
		opts.Circular = flags.circular
	}
	if set("mode") {
		opts.Mode = flags.mode
	}
	if set("sort-by") {
		opts.SortBy = flags.sortBy
	}
	if set("use-numeric") {
		opts.UseNumeric = flags.useNumeric
	}
	if set("weight") {
		opts.Weight = flags.weight
	}
	if set("offset") {
		opts.Offset = flags.offset
	}
	if set("width") {
		opts.Width = flags.width
	}
	if set("height") {
		opts.Height = flags.height
	}
	if set("axis") {
		opts.Axis = flags.axis
	}
	if set("section") {
		opts.Section = flags.section
	}
	if set("section-order") {
		opts.SectionOrder = flags.sectionOrder
	}
	if set("normalize-all") {
		opts.NormalizeAll = flags.normalizeAll
	}
	if set("center-gap") {
		opts.CenterGap = flags.centerGap
	}
	if set("section-gap") {
		opts.SectionGap = flags.sectionGap
	}
	if set("split") {
		opts.Split = flags.split
	}
	if set("split-angle") {
		opts.SplitAngle = flags.splitAngle
	}
	if set("updates") {
		opts.Updates = flags.updates
	}
	return opts, nil
}

// openCache picks the cache backend for a command invocation. With no
// explicit target, the user cache directory is used.
func openCache(ctx context.Context, target string, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	if target == "" {
		dir, err := defaultCacheDir()
		if err != nil {
			// No usable cache dir; run uncached rather than failing.
			return cache.NewNullCache(), nil
		}
		target = dir
	}
	return cache.Open(ctx, target)
}

// defaultCacheDir returns the per-user layout cache directory.
func defaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "lattica"), nil
}

// writeLayoutTo streams a layout document as indented JSON.
func writeLayoutTo(w io.Writer, doc *graphio.LayoutDoc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
