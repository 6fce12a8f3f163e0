package layout

import (
	"context"
	"math"
	"sort"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
)

// Hive arranges vertices on angular axes keyed by a categorical attribute.
//
// Each distinct value of opts.Axis becomes an axis; axes are ordered by
// label and allotted angular arcs proportional to opts.AxisWeights (default
// 1 each), starting at opts.Offset. Along each axis, vertices are placed at
// increasing radii, grouped into sections by opts.Section when given, with
// opts.CenterGap before the first vertex and opts.SectionGap between
// sections. Radial position within a section is the vertex's rank by
// opts.SortBy (or its normalized raw value with opts.UseNumeric).
//
// Axis splitting (opts.Split) clones an axis into two half-axes separated by
// opts.SplitAngle so that edges within one axis become visible: the original
// vertices rotate to one side, duplicates appear on the other, and edges are
// redirected so each runs between the two halves. "all" splits every axis,
// "loops" only axes with a self-loop. The rewriting happens on a derived
// graph; the input graph is never modified.
func Hive(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	switch opts.Split {
	case "", SplitNone, SplitAll, SplitLoops:
	default:
		return nil, errors.New(errors.ErrCodeInvalidOption,
			"unknown split mode %q (want %q, %q or %q)", opts.Split, SplitNone, SplitAll, SplitLoops)
	}
	if opts.Axis == "" {
		return nil, errors.New(errors.ErrCodeInvalidOption, "hive layout requires the axis option")
	}
	axisOf, ok := g.StringAttr(opts.Axis)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidOption,
			"axis attribute %q is missing or mixed-type", opts.Axis)
	}

	labels := distinctSorted(axisOf)
	angles, err := axisAngles(labels, opts.AxisWeights, opts.Offset)
	if err != nil {
		return nil, err
	}

	members := make(map[string][]int, len(labels))
	for v, label := range axisOf {
		members[label] = append(members[label], v)
	}

	radii := make([]float64, g.VertexCount())
	for _, label := range labels {
		if err := placeAxis(g, members[label], opts, radii); err != nil {
			return nil, err
		}
	}

	work := g
	theta := make([]float64, g.VertexCount())
	for v, label := range axisOf {
		theta[v] = angles[label]
	}

	if opts.Split != "" && opts.Split != SplitNone {
		work, radii, theta, err = splitAxes(g, axisOf, labels, angles, radii, opts)
		if err != nil {
			return nil, err
		}
	}

	nodes := make([]Node, work.VertexCount())
	for v := range nodes {
		nodes[v] = Node{
			X:    radii[v] * math.Cos(theta[v]),
			Y:    radii[v] * math.Sin(theta[v]),
			Leaf: true,
		}
	}
	return newTable(work, nodes, false, nil), nil
}

// axisAngles assigns each axis label an angle: arcs proportional to the
// label's weight (default 1), laid out cumulatively from offset in label
// order. Every axis sits at the start of its arc.
func axisAngles(labels []string, weights map[string]float64, offset float64) (map[string]float64, error) {
	total := 0.0
	for _, label := range labels {
		w := 1.0
		if weights != nil {
			if ww, ok := weights[label]; ok {
				w = ww
			}
		}
		if w <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidWeight,
				"axis weight for %q must be strictly positive", label)
		}
		total += w
	}

	angles := make(map[string]float64, len(labels))
	angle := offset
	for _, label := range labels {
		angles[label] = angle
		w := 1.0
		if weights != nil {
			if ww, ok := weights[label]; ok {
				w = ww
			}
		}
		angle += 2 * math.Pi * w / total
	}
	return angles, nil
}

// placeAxis computes the radius of every vertex on one axis, writing into
// radii. Vertices are partitioned into sections, sections laid out outward
// in order with SectionGap between them, and each vertex positioned within
// its section by rank or normalized numeric key.
func placeAxis(g *graph.Graph, axis []int, opts Options, radii []float64) error {
	sections, err := sectionGroups(g, axis, opts)
	if err != nil {
		return err
	}

	base := opts.CenterGap
	for _, section := range sections {
		positions, err := sectionPositions(g, section, opts)
		if err != nil {
			return err
		}
		maxR := base
		for i, v := range section {
			radii[v] = base + positions[i]
			if radii[v] > maxR {
				maxR = radii[v]
			}
		}
		base = maxR + opts.SectionGap
	}
	return nil
}

// sectionGroups partitions the axis members into ordered sections. Without
// the section option there is a single section. Explicitly ordered levels
// come first and must exist on the axis (MISSING_LEVEL otherwise); levels
// not named in the order follow sorted by label.
func sectionGroups(g *graph.Graph, axis []int, opts Options) ([][]int, error) {
	if opts.Section == "" {
		return [][]int{axis}, nil
	}
	sectionOf, ok := g.StringAttr(opts.Section)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidOption,
			"section attribute %q is missing or mixed-type", opts.Section)
	}

	byLevel := make(map[string][]int)
	for _, v := range axis {
		byLevel[sectionOf[v]] = append(byLevel[sectionOf[v]], v)
	}

	var levels []string
	seen := make(map[string]bool, len(opts.SectionOrder))
	for _, level := range opts.SectionOrder {
		if _, ok := byLevel[level]; !ok {
			return nil, errors.New(errors.ErrCodeMissingLevel,
				"section level %q not present on axis", level)
		}
		if !seen[level] {
			levels = append(levels, level)
			seen[level] = true
		}
	}
	var rest []string
	for level := range byLevel {
		if !seen[level] {
			rest = append(rest, level)
		}
	}
	sort.Strings(rest)
	levels = append(levels, rest...)

	groups := make([][]int, len(levels))
	for i, level := range levels {
		groups[i] = byLevel[level]
	}
	return groups, nil
}

// sectionPositions computes each section member's radial offset from the
// section base. Rank placement spaces members evenly at multiples of
// 1/len(section); numeric placement normalizes the sort attribute into
// [0, 1] over the section (or over all vertices with NormalizeAll).
func sectionPositions(g *graph.Graph, section []int, opts Options) ([]float64, error) {
	if opts.SortBy != "" && opts.UseNumeric {
		vals, ok := g.NumericAttr(opts.SortBy)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidOption,
				"use_numeric requires %q to be a numeric attribute", opts.SortBy)
		}
		lo, hi := vals[section[0]], vals[section[0]]
		if opts.NormalizeAll {
			lo, hi = minFloat(vals), maxFloat(vals)
		} else {
			for _, v := range section {
				if vals[v] < lo {
					lo = vals[v]
				}
				if vals[v] > hi {
					hi = vals[v]
				}
			}
		}
		out := make([]float64, len(section))
		for i, v := range section {
			out[i] = rescale(vals[v], [2]float64{lo, hi}, 0, 1)
		}
		return out, nil
	}

	order := make([]int, len(section))
	for i := range order {
		order[i] = i
	}
	if opts.SortBy != "" {
		ranks, err := attrRanks(g, opts.SortBy)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(order, func(a, b int) bool {
			return ranks[section[order[a]]] < ranks[section[order[b]]]
		})
	}
	out := make([]float64, len(section))
	step := 1 / float64(len(section))
	for rank, i := range order {
		out[i] = float64(rank) * step
	}
	return out, nil
}

// splitAxes derives a new graph in which each split axis is doubled: the
// originals rotate back by half the split angle, clones of their vertices
// appear rotated forward, and edges are redirected so that every edge
// touching a split axis runs between the half it starts nearer to and the
// opposite half. All rewriting is collected into a single edit applied to a
// copy of g.
func splitAxes(g *graph.Graph, axisOf []string, labels []string, angles map[string]float64, radii []float64, opts Options) (*graph.Graph, []float64, []float64, error) {
	split := make(map[string]bool, len(labels))
	switch opts.Split {
	case SplitAll:
		for _, label := range labels {
			split[label] = true
		}
	case SplitLoops:
		for _, e := range g.Edges() {
			if axisOf[e.From] == axisOf[e.To] {
				split[axisOf[e.From]] = true
			}
		}
	}

	delta := opts.SplitAngle / 2
	n := g.VertexCount()

	theta := make([]float64, n, 2*n)
	newRadii := make([]float64, n, 2*n)
	copy(newRadii, radii)
	for v := 0; v < n; v++ {
		theta[v] = angles[axisOf[v]]
		if split[axisOf[v]] {
			theta[v] -= delta
		}
	}

	// One clone per vertex on a split axis, appended in vertex order.
	cloneOf := make([]int, n)
	for i := range cloneOf {
		cloneOf[i] = -1
	}
	edit := graph.Edit{}
	next := n
	for v := 0; v < n; v++ {
		if !split[axisOf[v]] {
			continue
		}
		edit.AddVertices = append(edit.AddVertices, g.VertexMeta(v).Clone())
		cloneOf[v] = next
		theta = append(theta, angles[axisOf[v]]+delta)
		newRadii = append(newRadii, radii[v])
		next++
	}

	for i, e := range g.Edges() {
		from, to := e.From, e.To
		fromSplit, toSplit := split[axisOf[from]], split[axisOf[to]]
		if !fromSplit && !toSplit {
			continue
		}

		switch {
		case axisOf[from] == axisOf[to]:
			// Same-axis edge: run it from the lower-radius half to the
			// higher-radius clone. Self-loops keep their source.
			if radii[to] < radii[from] && from != to {
				from, to = to, from
			}
			to = cloneOf[to]
		default:
			// Cross-axis edge: redirect whichever endpoint sits on a split
			// axis to its clone when the other endpoint lies ahead of the
			// axis (within half a turn counterclockwise).
			if fromSplit {
				axisAngle := angles[axisOf[e.From]]
				if d := wrapPi(theta[to] - axisAngle); d > 0 && d <= math.Pi {
					from = cloneOf[e.From]
				}
			}
			if toSplit {
				axisAngle := angles[axisOf[e.To]]
				if d := wrapPi(theta[e.From] - axisAngle); d > 0 && d <= math.Pi {
					to = cloneOf[e.To]
				}
			}
		}

		if from != e.From || to != e.To {
			edit.RemoveEdges = append(edit.RemoveEdges, i)
			edit.AddEdges = append(edit.AddEdges, graph.Edge{From: from, To: to, Meta: e.Meta.Clone()})
		}
	}

	work, err := g.Apply(edit)
	if err != nil {
		return nil, nil, nil, err
	}
	return work, newRadii, theta, nil
}

// wrapPi normalizes an angle difference into (-π, π].
func wrapPi(d float64) float64 {
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

func distinctSorted(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	var out []string
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
