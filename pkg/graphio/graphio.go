package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
	"github.com/lattica/lattica/pkg/layout"
)

// GraphDoc is the wire form of a graph. Vertex identity is positional.
type GraphDoc struct {
	Directed bool      `json:"directed" bson:"directed"`
	Nodes    []NodeDoc `json:"nodes" bson:"nodes"`
	Edges    []EdgeDoc `json:"edges,omitempty" bson:"edges,omitempty"`
}

// NodeDoc is one vertex on the wire.
type NodeDoc struct {
	Attrs map[string]any `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// EdgeDoc is one edge on the wire; From and To are vertex indices.
type EdgeDoc struct {
	From  int            `json:"from" bson:"from"`
	To    int            `json:"to" bson:"to"`
	Attrs map[string]any `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// LayoutDoc is the wire form of a computed layout: the placed rows plus the
// graph the placement describes.
type LayoutDoc struct {
	Algorithm string      `json:"algorithm" bson:"algorithm"`
	Circular  bool        `json:"circular" bson:"circular"`
	Rows      []RowDoc    `json:"rows" bson:"rows"`
	Notices   []NoticeDoc `json:"notices,omitempty" bson:"notices,omitempty"`
	Graph     *GraphDoc   `json:"graph,omitempty" bson:"graph,omitempty"`
}

// RowDoc is one placed vertex on the wire.
type RowDoc struct {
	X        float64        `json:"x" bson:"x"`
	Y        float64        `json:"y" bson:"y"`
	Circular bool           `json:"circular" bson:"circular"`
	Depth    int            `json:"depth,omitempty" bson:"depth,omitempty"`
	Leaf     bool           `json:"leaf,omitempty" bson:"leaf,omitempty"`
	Width    float64        `json:"width,omitempty" bson:"width,omitempty"`
	Height   float64        `json:"height,omitempty" bson:"height,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// NoticeDoc is one advisory on the wire.
type NoticeDoc struct {
	Code    string `json:"code" bson:"code"`
	Message string `json:"message" bson:"message"`
}

// ToGraphDoc converts a graph into its wire form.
func ToGraphDoc(g *graph.Graph) *GraphDoc {
	doc := &GraphDoc{
		Directed: g.IsDirected(),
		Nodes:    make([]NodeDoc, g.VertexCount()),
	}
	for v := 0; v < g.VertexCount(); v++ {
		if meta := g.VertexMeta(v); len(meta) > 0 {
			doc.Nodes[v] = NodeDoc{Attrs: meta.Clone()}
		}
	}
	for _, e := range g.Edges() {
		ed := EdgeDoc{From: e.From, To: e.To}
		if len(e.Meta) > 0 {
			ed.Attrs = e.Meta.Clone()
		}
		doc.Edges = append(doc.Edges, ed)
	}
	return doc
}

// FromGraphDoc builds a graph from its wire form. Edge endpoints must be
// valid vertex indices.
func FromGraphDoc(doc *GraphDoc) (*graph.Graph, error) {
	g := graph.New(doc.Directed)
	for _, n := range doc.Nodes {
		g.AddVertex(graph.Metadata(n.Attrs))
	}
	for _, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To, graph.Metadata(e.Attrs)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %d->%d", e.From, e.To)
		}
	}
	return g, nil
}

// ToLayoutDoc converts a layout table into its wire form, embedding the
// table's back-referenced graph.
func ToLayoutDoc(t *layout.Table) *LayoutDoc {
	doc := &LayoutDoc{
		Algorithm: t.Algorithm,
		Circular:  t.Circular,
		Rows:      make([]RowDoc, len(t.Nodes)),
	}
	for i, n := range t.Nodes {
		row := RowDoc{
			X: n.X, Y: n.Y,
			Circular: n.Circular,
			Depth:    n.Depth,
			Leaf:     n.Leaf,
			Width:    n.Width,
			Height:   n.Height,
		}
		if len(n.Meta) > 0 {
			row.Attrs = n.Meta.Clone()
		}
		doc.Rows[i] = row
	}
	for _, n := range t.Notices {
		doc.Notices = append(doc.Notices, NoticeDoc{Code: n.Code, Message: n.Message})
	}
	if g := t.Graph(); g != nil {
		doc.Graph = ToGraphDoc(g)
	}
	return doc
}

// FromLayoutDoc rebuilds a layout table from its wire form. The document
// must embed its graph; row attributes travel with the rows.
func FromLayoutDoc(doc *LayoutDoc) (*layout.Table, error) {
	if doc.Graph == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout document has no embedded graph")
	}
	g, err := FromGraphDoc(doc.Graph)
	if err != nil {
		return nil, err
	}
	nodes := make([]layout.Node, len(doc.Rows))
	for i, r := range doc.Rows {
		nodes[i] = layout.Node{
			X: r.X, Y: r.Y,
			Circular: r.Circular,
			Depth:    r.Depth,
			Leaf:     r.Leaf,
			Width:    r.Width,
			Height:   r.Height,
			Meta:     graph.Metadata(r.Attrs),
		}
	}
	var notices []layout.Notice
	for _, n := range doc.Notices {
		notices = append(notices, layout.Notice{Code: n.Code, Message: n.Message})
	}
	t := layout.NewTable(g, nodes, doc.Circular, notices)
	t.Algorithm = doc.Algorithm
	return t, nil
}

// ReadGraph decodes a JSON graph from r. It does not close r.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	var doc GraphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding graph")
	}
	return FromGraphDoc(&doc)
}

// ImportGraph reads a JSON graph file at path.
func ImportGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "opening %s", path)
	}
	defer f.Close()
	return ReadGraph(f)
}

// WriteGraph encodes g as indented JSON to w. The output can be re-imported
// with [ReadGraph] for round-trip processing.
func WriteGraph(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToGraphDoc(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding graph")
	}
	return nil
}

// WriteLayout encodes a layout table as indented JSON to w.
func WriteLayout(t *layout.Table, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToLayoutDoc(t)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding layout")
	}
	return nil
}

// ExportLayout writes a layout table to a JSON file at path.
func ExportLayout(t *layout.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating %s", path)
	}
	defer f.Close()
	return WriteLayout(t, f)
}

// ReadLayout decodes a layout document from r. It does not close r.
func ReadLayout(r io.Reader) (*LayoutDoc, error) {
	var doc LayoutDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding layout")
	}
	return &doc, nil
}
