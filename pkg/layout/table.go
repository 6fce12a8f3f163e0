package layout

import (
	"gonum.org/v1/gonum/graph/path"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
)

// Node is one row of a layout table: the placement of a single vertex (or,
// for treemaps, a single tree node) plus derived metadata and the vertex
// attributes joined by index.
type Node struct {
	X        float64
	Y        float64
	Circular bool

	// Depth is the distance from the leaf baseline (dendrogram) or root
	// (treemap); zero where the algorithm has no hierarchy.
	Depth int
	// Leaf marks nodes without children in hierarchy-based layouts.
	Leaf bool
	// Width and Height are the rectangle extents assigned by the treemap;
	// zero elsewhere.
	Width  float64
	Height float64

	// Meta carries the attributes of the placed vertex, joined by index.
	Meta graph.Metadata
}

// Notice is an advisory emitted by an algorithm that completed after a lossy
// simplification. Notices never indicate failure.
type Notice struct {
	Code    string // stable identifier, e.g. "multiple-components"
	Message string
}

// Notice codes.
const (
	NoticeMultipleComponents = "multiple-components"
	NoticeMultipleRoots      = "multiple-roots"
	NoticeMultipleParents    = "multiple-parents"
	NoticeIgnoredWeights     = "ignored-weights"
)

// EdgeRecord is one edge reconstructed from a layout's back-referenced
// graph, for consumers that draw connections between placed vertices.
type EdgeRecord struct {
	From     int
	To       int
	Circular bool
	Meta     graph.Metadata
}

// Table is the result of a layout computation: one Node per vertex in vertex
// index order. The table owns its rows independently of the source graph but
// keeps a back-reference to the graph the placement describes - for the hive
// layout that is the derived, rewritten graph, not the caller's input.
type Table struct {
	Algorithm string
	Circular  bool
	Nodes     []Node
	Notices   []Notice

	src *graph.Graph
}

// Graph returns the graph this table describes. For algorithms that rewrite
// topology this is the derived graph; mutating it does not affect the
// caller's input graph.
func (t *Table) Graph() *graph.Graph { return t.src }

// Edges reconstructs the edge list of the back-referenced graph, one record
// per edge in insertion order, with the table's circularity flag applied.
func (t *Table) Edges() []EdgeRecord {
	if t.src == nil {
		return nil
	}
	edges := t.src.Edges()
	out := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		out[i] = EdgeRecord{From: e.From, To: e.To, Circular: t.Circular, Meta: e.Meta}
	}
	return out
}

// Paths returns, for each endpoint pair, the sequence of vertex indices on
// the shortest path between them in the back-referenced graph. When
// weightAttr names a numeric column of the table, traversal cost is the
// weight of each vertex entered; weights must be non-negative. Otherwise
// every step costs 1. Pairs with no connecting path yield a nil sequence.
func (t *Table) Paths(pairs [][2]int, weightAttr string) ([][]int, error) {
	if t.src == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has no back-referenced graph")
	}

	adapter := graph.Gonum{G: t.src}
	if weightAttr != "" {
		weights := make([]float64, len(t.Nodes))
		for i, n := range t.Nodes {
			w, ok := numericValue(n.Meta[weightAttr])
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidWeight,
					"weight column %q is missing or non-numeric at row %d", weightAttr, i)
			}
			// Dijkstra panics on negative weights; reject them up front.
			if w < 0 {
				return nil, errors.New(errors.ErrCodeInvalidWeight,
					"weight column %q is negative (%v) at row %d", weightAttr, w, i)
			}
			weights[i] = w
		}
		adapter.VertexWeight = weights
	}

	n := t.src.VertexCount()
	result := make([][]int, len(pairs))
	for i, pair := range pairs {
		from, to := pair[0], pair[1]
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"path endpoints %d→%d out of range (graph has %d vertices)", from, to, n)
		}
		shortest := path.DijkstraFrom(adapter.Node(int64(from)), adapter)
		nodes, _ := shortest.To(int64(to))
		if len(nodes) == 0 {
			continue
		}
		seq := make([]int, len(nodes))
		for j, node := range nodes {
			seq[j] = int(node.ID())
		}
		result[i] = seq
	}
	return result, nil
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// NewTable builds a table over the given back-referenced graph. It is meant
// for deserialized layouts and registered custom algorithms; the builtin
// algorithms construct their tables internally.
func NewTable(src *graph.Graph, nodes []Node, circular bool, notices []Notice) *Table {
	return newTable(src, nodes, circular, notices)
}

// newTable builds a table over the given back-referenced graph, joining the
// graph's vertex attributes into the rows by index when the row count
// matches the vertex count.
func newTable(src *graph.Graph, nodes []Node, circular bool, notices []Notice) *Table {
	t := &Table{Circular: circular, Nodes: nodes, Notices: notices, src: src}
	if src != nil && src.VertexCount() == len(nodes) {
		for i := range t.Nodes {
			if t.Nodes[i].Meta == nil {
				t.Nodes[i].Meta = src.VertexMeta(i).Clone()
			}
		}
	}
	for i := range t.Nodes {
		t.Nodes[i].Circular = circular
	}
	return t
}
