package layout

import "math"

// Mode values select how edge direction maps to the parent/child relation in
// tree-based layouts.
const (
	// ModeOut treats edges as pointing parent→child.
	ModeOut = "out"
	// ModeIn treats edges as pointing child→parent.
	ModeIn = "in"
)

// Split modes for the hive layout.
const (
	// SplitNone never splits axes.
	SplitNone = "none"
	// SplitAll splits every axis.
	SplitAll = "all"
	// SplitLoops splits only axes that carry a self-loop edge.
	SplitLoops = "loops"
)

// Options configures a layout computation. Every algorithm reads the subset
// of fields that applies to it and ignores the rest; mutually inconsistent
// combinations fail with INVALID_OPTION.
//
// Fields carry TOML tags so option files can be decoded directly.
type Options struct {
	// Circular transforms hierarchical/linear layouts into polar form.
	// Only dendrogram and linear honor it; other builtins reject it.
	Circular bool `toml:"circular"`

	// Mode selects the parent/child direction for tree layouts: "out" or "in".
	Mode string `toml:"mode"`

	// SortBy names a vertex attribute used as ordering key.
	SortBy string `toml:"sort_by"`

	// UseNumeric places vertices at the raw numeric value of SortBy instead
	// of its rank. Requires SortBy to be a numeric attribute.
	UseNumeric bool `toml:"use_numeric"`

	// Weight names a numeric vertex attribute used as leaf weight in
	// hierarchy-based layouts. Empty means leaves weigh 1.
	Weight string `toml:"weight"`

	// Offset is the angular offset, in radians, added by circular transforms
	// and used as the starting angle of hive axes.
	Offset float64 `toml:"offset"`

	// Width and Height bound the treemap rectangle.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Axis names the categorical vertex attribute that assigns hive axes.
	Axis string `toml:"axis"`

	// AxisWeights sets per-axis angular width weights by axis label.
	// Missing labels default to 1.
	AxisWeights map[string]float64 `toml:"axis_weights"`

	// Section names a second categorical attribute subdividing each axis.
	Section string `toml:"section"`

	// SectionOrder fixes the order of section levels explicitly. Levels it
	// names must exist (MISSING_LEVEL otherwise); levels it omits follow in
	// sorted order.
	SectionOrder []string `toml:"section_order"`

	// NormalizeAll normalizes numeric radial keys over all vertices instead
	// of per axis.
	NormalizeAll bool `toml:"normalize_all"`

	// CenterGap offsets every radius outward from the hive center.
	CenterGap float64 `toml:"center_gap"`

	// SectionGap separates consecutive sections on the same axis.
	SectionGap float64 `toml:"section_gap"`

	// Split selects hive axis splitting: "none", "all", or "loops".
	Split string `toml:"split"`

	// SplitAngle is the total angular separation, in radians, between the
	// two copies of a split axis.
	SplitAngle float64 `toml:"split_angle"`

	// Updates bounds the iterations of the force-directed optimizer.
	Updates int `toml:"updates"`
}

// DefaultOptions returns the option defaults shared by the CLI and pipeline.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeOut,
		Offset:     math.Pi / 2,
		Width:      1,
		Height:     1,
		CenterGap:  0.1,
		SectionGap: 0.1,
		Split:      SplitNone,
		SplitAngle: math.Pi / 6,
		Updates:    100,
	}
}
