package layout

import (
	"fmt"
	"slices"
	"sort"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
)

// Tree is the result of normalizing a directed graph into a strict
// single-rooted tree. Vertex 0 of Graph is always the root; edges point
// parent→child regardless of the mode the source graph was read with.
type Tree struct {
	Graph *graph.Graph
	// Origin maps each tree vertex back to the source vertex it was built
	// from. Unfolded duplicates share the origin of the vertex they copy.
	Origin  []int
	Notices []Notice
}

// GraphToTree converts an arbitrary directed graph into a strict tree.
//
// The conversion is deliberately lossy where the input is not already a
// tree, always breaking ties toward the lowest vertex index and reporting
// each simplification as a notice:
//
//   - multi-edges and self-loops are dropped (simplify)
//   - of several weakly-connected components, only the first is kept
//   - of several roots, only the first is kept (with its reachable subtree)
//   - vertices reached via multiple paths are unfolded into duplicates,
//     attributes copied; edges closing a cycle become duplicate leaves
//
// mode selects the parent/child reading of edges: ModeOut means edges point
// parent→child, ModeIn the reverse. Fails with INVALID_GRAPH for undirected
// input and NO_ROOT when no vertex has zero in-degree under mode.
func GraphToTree(g *graph.Graph, mode string) (*Tree, error) {
	childDir, parentDir, err := modeDirections(mode)
	if err != nil {
		return nil, err
	}
	if !g.IsDirected() {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "tree normalization requires a directed graph")
	}

	var notices []Notice
	work := g.Simplify()
	origin := identity(work.VertexCount())

	if comps := work.Components(); len(comps) > 1 {
		notices = append(notices, Notice{
			Code:    NoticeMultipleComponents,
			Message: fmt.Sprintf("graph has %d components; keeping the first (%d vertices)", len(comps), len(comps[0])),
		})
		work = work.InducedSubgraph(comps[0])
		origin = comps[0]
	}

	var roots []int
	for v := 0; v < work.VertexCount(); v++ {
		if work.Degree(v, parentDir) == 0 {
			roots = append(roots, v)
		}
	}
	if len(roots) == 0 {
		return nil, errors.New(errors.ErrCodeNoRoot, "no vertex with zero in-degree under mode %q", mode)
	}
	if len(roots) > 1 {
		notices = append(notices, Notice{
			Code:    NoticeMultipleRoots,
			Message: fmt.Sprintf("graph has %d roots; keeping vertex %d", len(roots), origin[roots[0]]),
		})
	}
	root := roots[0]

	tree := &Tree{Graph: graph.New(true), Notices: notices}
	built := make([]int, work.VertexCount()) // times each source vertex was materialized
	onPath := make([]bool, work.VertexCount())

	var build func(v int) int
	build = func(v int) int {
		idx := tree.Graph.AddVertex(work.VertexMeta(v).Clone())
		tree.Origin = append(tree.Origin, origin[v])
		built[v]++
		onPath[v] = true

		children := slices.Clone(work.Neighbors(v, childDir))
		slices.Sort(children)
		for _, c := range children {
			if onPath[c] {
				// Edge closes a cycle: duplicate the target as a leaf
				// instead of recursing forever.
				dup := tree.Graph.AddVertex(work.VertexMeta(c).Clone())
				tree.Origin = append(tree.Origin, origin[c])
				built[c]++
				_, _ = tree.Graph.AddEdge(idx, dup, nil)
				continue
			}
			child := build(c)
			_, _ = tree.Graph.AddEdge(idx, child, nil)
		}
		onPath[v] = false
		return idx
	}
	build(root)

	for _, times := range built {
		if times > 1 {
			tree.Notices = append(tree.Notices, Notice{
				Code:    NoticeMultipleParents,
				Message: "graph is not a tree; vertices reached via multiple paths were duplicated",
			})
			break
		}
	}
	return tree, nil
}

// Hierarchy is the index-based linearization of a Tree consumed by the
// treemap splitter: per tree node, the parent index (-1 for the root), a
// traversal rank, and a non-negative weight.
type Hierarchy struct {
	Parent []int
	Order  []int
	Weight []float64
	Leaf   []bool

	Tree    *Tree
	Notices []Notice
}

// Hierarchy linearizes the tree. sortBy optionally names a vertex attribute
// whose rank determines traversal order (default: positional). weightAttr
// optionally names a numeric attribute supplying leaf weights; when given,
// every leaf weight must be strictly positive (INVALID_WEIGHT otherwise) and
// non-leaf values are ignored with a notice. Without weightAttr, leaves
// weigh 1 and internal nodes 0.
func (t *Tree) Hierarchy(sortBy, weightAttr string) (*Hierarchy, error) {
	g := t.Graph
	n := g.VertexCount()
	h := &Hierarchy{
		Parent:  make([]int, n),
		Order:   make([]int, n),
		Weight:  make([]float64, n),
		Leaf:    make([]bool, n),
		Tree:    t,
		Notices: slices.Clone(t.Notices),
	}

	for v := 0; v < n; v++ {
		parents := g.Neighbors(v, graph.DirIn)
		if len(parents) == 0 {
			h.Parent[v] = -1
		} else {
			h.Parent[v] = parents[0]
		}
		h.Leaf[v] = g.Degree(v, graph.DirOut) == 0
	}

	if sortBy == "" {
		for v := range h.Order {
			h.Order[v] = v
		}
	} else {
		ranks, err := attrRanks(g, sortBy)
		if err != nil {
			return nil, err
		}
		h.Order = ranks
	}

	if weightAttr == "" {
		for v := range h.Weight {
			if h.Leaf[v] {
				h.Weight[v] = 1
			}
		}
		return h, nil
	}

	weights, ok := g.NumericAttr(weightAttr)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidWeight,
			"weight attribute %q is missing or non-numeric", weightAttr)
	}
	ignored := false
	for v := range weights {
		if h.Leaf[v] {
			if weights[v] <= 0 {
				return nil, errors.New(errors.ErrCodeInvalidWeight,
					"leaf weights must be strictly positive; vertex %d has %v", v, weights[v])
			}
			h.Weight[v] = weights[v]
		} else if weights[v] != 0 {
			ignored = true
		}
	}
	if ignored {
		h.Notices = append(h.Notices, Notice{
			Code:    NoticeIgnoredWeights,
			Message: "non-leaf weights are ignored; internal weights are sums of their children",
		})
	}
	return h, nil
}

// Children returns the children of tree node v ordered by rank, ties broken
// by index.
func (h *Hierarchy) Children(v int) []int {
	var children []int
	for c, p := range h.Parent {
		if p == v {
			children = append(children, c)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return h.Order[children[i]] < h.Order[children[j]]
	})
	return children
}

// attrRanks computes dense ranks (0-based) of a vertex attribute, numeric or
// categorical, with ties broken by vertex index.
func attrRanks(g *graph.Graph, attr string) ([]int, error) {
	n := g.VertexCount()
	order := identity(n)

	if vals, ok := g.NumericAttr(attr); ok {
		sort.SliceStable(order, func(i, j int) bool { return vals[order[i]] < vals[order[j]] })
	} else if vals, ok := g.StringAttr(attr); ok {
		sort.SliceStable(order, func(i, j int) bool { return vals[order[i]] < vals[order[j]] })
	} else {
		return nil, errors.New(errors.ErrCodeInvalidOption,
			"sort attribute %q is missing or mixed-type", attr)
	}

	ranks := make([]int, n)
	for rank, v := range order {
		ranks[v] = rank
	}
	return ranks, nil
}

func modeDirections(mode string) (child, parent graph.Direction, err error) {
	switch mode {
	case ModeOut, "":
		return graph.DirOut, graph.DirIn, nil
	case ModeIn:
		return graph.DirIn, graph.DirOut, nil
	default:
		return 0, 0, errors.New(errors.ErrCodeInvalidOption, "unknown mode %q (want %q or %q)", mode, ModeOut, ModeIn)
	}
}

func identity(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}
