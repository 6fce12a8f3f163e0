package layout

import (
	"context"
	"slices"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
)

// Dendrogram places the vertices of a directed forest bottom-up: leaves land
// on the baseline y=0 at consecutive x positions starting at 1, each internal
// vertex at the mean x of its children and one level above the deepest child.
// Depth on each row is the vertex's height above the baseline.
//
// Vertices on a cycle that have no acyclic children are treated as leaves.
// Multiple roots lay out as a forest sharing one baseline. With
// opts.Circular the (height, leaf-position) pairs are mapped to polar
// coordinates: the baseline becomes the outer ring and roots move to the
// center.
func Dendrogram(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	if !g.IsDirected() {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "dendrogram requires a directed graph")
	}
	childDir, parentDir, err := modeDirections(opts.Mode)
	if err != nil {
		return nil, err
	}

	var roots []int
	for v := 0; v < g.VertexCount(); v++ {
		if g.Degree(v, parentDir) == 0 {
			roots = append(roots, v)
		}
	}
	if len(roots) == 0 {
		return nil, errors.New(errors.ErrCodeNoRoot, "no vertex with zero in-degree under mode %q", opts.Mode)
	}

	n := g.VertexCount()
	xs := make([]float64, n)
	ys := make([]float64, n)
	placed := make([]bool, n)
	visiting := make([]bool, n)
	nextLeaf := 0.0

	var place func(v int)
	place = func(v int) {
		if placed[v] || visiting[v] {
			return
		}
		visiting[v] = true
		children := slices.Clone(g.Neighbors(v, childDir))
		slices.Sort(children)
		// Neighbors yields one entry per edge; a multi-edge child counts
		// once in the mean.
		children = slices.Compact(children)

		sumX, maxY := 0.0, 0.0
		count := 0
		for _, c := range children {
			// A child on the current path would recurse forever; skip it.
			// Its placement comes from whichever path reached it first.
			if visiting[c] {
				continue
			}
			place(c)
			if !placed[c] {
				continue
			}
			sumX += xs[c]
			if ys[c] > maxY {
				maxY = ys[c]
			}
			count++
		}
		if count == 0 {
			nextLeaf++
			xs[v] = nextLeaf
			ys[v] = 0
		} else {
			xs[v] = sumX / float64(count)
			ys[v] = maxY + 1
		}
		placed[v] = true
		visiting[v] = false
	}
	for _, r := range roots {
		place(r)
	}
	// Vertices unreachable from any root sit on cycles; peel them as leaves.
	for v := 0; v < n; v++ {
		place(v)
	}

	maxY := 0.0
	for _, y := range ys {
		if y > maxY {
			maxY = y
		}
	}

	nodes := make([]Node, n)
	if opts.Circular {
		// Reversed radius domain: the deepest level maps to the center.
		polar := Radial{
			RadiusDomain: [2]float64{maxY, 0},
			AngleDomain:  [2]float64{0, nextLeaf + 1},
			Offset:       opts.Offset,
		}
		for v := 0; v < n; v++ {
			x, y := polar.Transform(ys[v], xs[v])
			nodes[v] = Node{X: x, Y: y, Depth: int(ys[v]), Leaf: ys[v] == 0}
		}
	} else {
		for v := 0; v < n; v++ {
			nodes[v] = Node{X: xs[v], Y: ys[v], Depth: int(ys[v]), Leaf: ys[v] == 0}
		}
	}
	return newTable(g, nodes, opts.Circular, nil), nil
}
