package layout

import (
	"context"
	"math"

	"github.com/lattica/lattica/pkg/graph"
)

// Rect is an axis-aligned rectangle given by its lower-left corner and
// extents.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) aspect() float64 {
	if r.Width == 0 || r.Height == 0 {
		return math.Inf(1)
	}
	return math.Max(r.Width/r.Height, r.Height/r.Width)
}

// Treemap recursively subdivides the rectangle (0, 0, opts.Width,
// opts.Height) among the nodes of the tree derived from g. Each internal
// node's weight is the sum of its leaves; at every level the children are
// partitioned into two contiguous groups at the cut that minimizes the worst
// aspect ratio, splitting the rectangle across its longer side.
//
// The returned table has one row per tree node (not per input vertex, since
// normalization may duplicate vertices): X and Y are rectangle centers,
// Width and Height the extents, Depth the distance from the root.
func Treemap(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	tree, err := GraphToTree(g, opts.Mode)
	if err != nil {
		return nil, err
	}
	h, err := tree.Hierarchy(opts.SortBy, opts.Weight)
	if err != nil {
		return nil, err
	}

	n := len(h.Parent)
	total := make([]float64, n)
	depth := make([]int, n)
	// Bottom-up weight accumulation: children of any vertex always have
	// higher indices than their parent (the tree is built preorder).
	for v := n - 1; v >= 0; v-- {
		if h.Leaf[v] {
			total[v] = h.Weight[v]
		}
		if p := h.Parent[v]; p >= 0 {
			total[p] += total[v]
		}
	}
	for v := 1; v < n; v++ {
		depth[v] = depth[h.Parent[v]] + 1
	}

	rects := make([]Rect, n)
	rects[0] = Rect{X: 0, Y: 0, Width: opts.Width, Height: opts.Height}
	var subdivide func(v int)
	subdivide = func(v int) {
		children := h.Children(v)
		if len(children) == 0 {
			return
		}
		weights := make([]float64, len(children))
		for i, c := range children {
			weights[i] = total[c]
		}
		for i, r := range splitRect(rects[v], weights) {
			rects[children[i]] = r
			subdivide(children[i])
		}
	}
	subdivide(0)

	nodes := make([]Node, n)
	for v, r := range rects {
		nodes[v] = Node{
			X:      r.X + r.Width/2,
			Y:      r.Y + r.Height/2,
			Width:  r.Width,
			Height: r.Height,
			Depth:  depth[v],
			Leaf:   h.Leaf[v],
		}
	}
	return newTable(tree.Graph, nodes, false, h.Notices), nil
}

// splitRect partitions rect among weights by recursive binary cuts. At each
// step the weights are divided into two contiguous groups at the boundary
// that minimizes the larger group's aspect ratio after the cut; the cut runs
// across the rectangle's longer side. Zero total weight divides equally.
func splitRect(rect Rect, weights []float64) []Rect {
	if len(weights) == 1 {
		return []Rect{rect}
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	bestK, bestScore := 1, math.Inf(1)
	for k := 1; k < len(weights); k++ {
		first := 0.0
		for _, w := range weights[:k] {
			first += w
		}
		a, b := cutRect(rect, first, sum)
		if score := math.Max(a.aspect(), b.aspect()); score < bestScore {
			bestK, bestScore = k, score
		}
	}

	first := 0.0
	for _, w := range weights[:bestK] {
		first += w
	}
	a, b := cutRect(rect, first, sum)
	out := make([]Rect, 0, len(weights))
	out = append(out, splitRect(a, weights[:bestK])...)
	out = append(out, splitRect(b, weights[bestK:])...)
	return out
}

// cutRect slices rect into a first part holding first/sum of the area and a
// second part holding the rest. Wide rectangles are cut vertically with the
// first part on the left; tall ones horizontally with the first part on top.
func cutRect(rect Rect, first, sum float64) (Rect, Rect) {
	frac := 0.5
	if sum > 0 {
		frac = first / sum
	}
	if rect.Width >= rect.Height {
		w := rect.Width * frac
		return Rect{X: rect.X, Y: rect.Y, Width: w, Height: rect.Height},
			Rect{X: rect.X + w, Y: rect.Y, Width: rect.Width - w, Height: rect.Height}
	}
	h := rect.Height * frac
	return Rect{X: rect.X, Y: rect.Y + rect.Height - h, Width: rect.Width, Height: h},
		Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height - h}
}
