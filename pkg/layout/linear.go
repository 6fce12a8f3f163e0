package layout

import (
	"context"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
)

// Linear places every vertex on a single axis at y=0.
//
// Without a sort key the x position is the vertex index plus one. With
// opts.SortBy the position is the dense rank (1-based) of the attribute
// value, ties broken by vertex index; with opts.UseNumeric additionally set,
// the raw numeric attribute value is used directly. With opts.Circular the
// axis wraps around a unit circle.
func Linear(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
	n := g.VertexCount()
	xs := make([]float64, n)
	raw := false

	switch {
	case opts.SortBy != "" && opts.UseNumeric:
		vals, ok := g.NumericAttr(opts.SortBy)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidOption,
				"use_numeric requires %q to be a numeric attribute", opts.SortBy)
		}
		copy(xs, vals)
		raw = true
	case opts.SortBy != "":
		ranks, err := attrRanks(g, opts.SortBy)
		if err != nil {
			return nil, err
		}
		for v, r := range ranks {
			xs[v] = float64(r + 1)
		}
	default:
		for v := range xs {
			xs[v] = float64(v + 1)
		}
	}

	nodes := make([]Node, n)
	if opts.Circular {
		nodes = wrapLinear(xs, raw, opts.Offset)
	} else {
		for v := 0; v < n; v++ {
			nodes[v] = Node{X: xs[v], Y: 0, Leaf: true}
		}
	}
	return newTable(g, nodes, opts.Circular, nil), nil
}

// wrapLinear maps linear positions onto a circle of radius 0.5. Rank and
// index positions get an angle domain one wider than the maximum so the
// first and last vertices do not overlap; raw numeric positions span their
// own value range exactly.
func wrapLinear(xs []float64, raw bool, offset float64) []Node {
	var domain [2]float64
	if raw {
		domain = [2]float64{minFloat(xs), maxFloat(xs)}
	} else {
		domain = [2]float64{0, maxFloat(xs) + 1}
	}
	polar := Radial{
		RadiusDomain: [2]float64{0, 0}, // every vertex at radius 0.5
		AngleDomain:  domain,
		Offset:       offset,
	}
	nodes := make([]Node, len(xs))
	for v, x := range xs {
		px, py := polar.Transform(0, x)
		nodes[v] = Node{X: px, Y: py, Leaf: true}
	}
	return nodes
}

func minFloat(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxFloat(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
