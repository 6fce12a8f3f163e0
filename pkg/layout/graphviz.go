package layout

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
)

// graphvizEngine returns a layout function delegating to one of the graphviz
// engines (dot, neato, fdp, circo, twopi, sfdp): the graph is serialized to
// DOT, laid out by the engine, and node positions read back from the xdot
// output.
func graphvizEngine(engine string) Func {
	return func(ctx context.Context, g *graph.Graph, opts Options) (*Table, error) {
		n := g.VertexCount()
		if n == 0 {
			return newTable(g, nil, false, nil), nil
		}

		gv, err := graphviz.New(ctx)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "initializing graphviz")
		}
		defer gv.Close()

		parsed, err := graphviz.ParseBytes([]byte(ToDOT(g)))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "parsing generated dot")
		}
		gv.SetLayout(graphviz.Layout(engine))

		var buf bytes.Buffer
		if err := gv.Render(ctx, parsed, graphviz.XDOT, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "running %s layout", engine)
		}

		positions, err := parsePositions(buf.Bytes(), n)
		if err != nil {
			return nil, err
		}
		nodes := make([]Node, n)
		for v := 0; v < n; v++ {
			nodes[v] = Node{X: positions[v][0], Y: positions[v][1], Leaf: true}
		}
		return newTable(g, nodes, false, nil), nil
	}
}

// ToDOT serializes the graph in DOT syntax with vertices named n0, n1, ...
// in index order. A vertex's "name" attribute, when present and a string,
// becomes its label.
func ToDOT(g *graph.Graph) string {
	var b bytes.Buffer
	arrow := "--"
	if g.IsDirected() {
		b.WriteString("digraph {\n")
		arrow = "->"
	} else {
		b.WriteString("graph {\n")
	}
	for v := 0; v < g.VertexCount(); v++ {
		if name, ok := g.VertexMeta(v)["name"].(string); ok {
			fmt.Fprintf(&b, "\tn%d [label=%q];\n", v, name)
		} else {
			fmt.Fprintf(&b, "\tn%d;\n", v)
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "\tn%d %s n%d;\n", e.From, arrow, e.To)
	}
	b.WriteString("}\n")
	return b.String()
}

var nodePosRe = regexp.MustCompile(`\bn(\d+)\s*\[[^\]]*?pos="([0-9.eE+-]+),([0-9.eE+-]+)"`)

// parsePositions extracts node coordinates from xdot output. Edge spline pos
// attributes (prefixed "e," or "s," or containing spline points) never match
// because the pattern anchors on the nX node name and a bare x,y pair.
func parsePositions(xdot []byte, n int) ([][2]float64, error) {
	positions := make([][2]float64, n)
	seen := make([]bool, n)
	for _, m := range nodePosRe.FindAllSubmatch(xdot, -1) {
		idx, err := strconv.Atoi(string(m[1]))
		if err != nil || idx < 0 || idx >= n {
			continue
		}
		x, errX := strconv.ParseFloat(string(m[2]), 64)
		y, errY := strconv.ParseFloat(string(m[3]), 64)
		if errX != nil || errY != nil {
			continue
		}
		positions[idx] = [2]float64{x, y}
		seen[idx] = true
	}
	for v, ok := range seen {
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "engine output missing position for vertex %d", v)
		}
	}
	return positions, nil
}
