package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lattica/lattica/pkg/cache"
	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/graph"
	"github.com/lattica/lattica/pkg/layout"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(true)
	g.AddVertex(graph.Metadata{"name": "root"})
	g.AddVertex(graph.Metadata{"name": "a"})
	g.AddVertex(graph.Metadata{"name": "b"})
	for _, e := range [][2]int{{0, 1}, {0, 2}} {
		if _, err := g.AddEdge(e[0], e[1], nil); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestExecuteWithProvidedGraph(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Graph:     testGraph(t),
		Algorithm: "dendrogram",
		Layout:    layout.DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("RunID not assigned")
	}
	if result.Stats.VertexCount != 3 || result.Stats.EdgeCount != 2 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if result.Layout == nil || result.Layout.Algorithm != "dendrogram" {
		t.Fatalf("layout = %+v", result.Layout)
	}
	if len(result.Layout.Rows) != 3 {
		t.Errorf("got %d rows, want 3", len(result.Layout.Rows))
	}
	if result.GraphHash == "" {
		t.Error("graph hash not computed")
	}
	if result.CacheInfo.LayoutHit {
		t.Error("null cache should never hit")
	}
}

func TestExecuteImportsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	content := `{"directed": false, "nodes": [{}, {}], "edges": [{"from": 0, "to": 1}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil)
	defer r.Close()
	result, err := r.Execute(context.Background(), Options{
		Input:     path,
		Algorithm: "circle",
		Layout:    layout.DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stats.VertexCount != 2 {
		t.Errorf("VertexCount = %d, want 2", result.Stats.VertexCount)
	}
}

func TestExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil)
	defer r.Close()

	opts := Options{
		Graph:     testGraph(t),
		Algorithm: "treemap",
		Layout:    layout.DefaultOptions(),
	}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should be a miss")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the cache")
	}
	if len(second.Layout.Rows) != len(first.Layout.Rows) {
		t.Errorf("cached rows = %d, want %d", len(second.Layout.Rows), len(first.Layout.Rows))
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestExecuteValidation(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	ctx := context.Background()

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{name: "no input", opts: Options{Algorithm: "circle"}, code: errors.ErrCodeInvalidInput},
		{
			name: "both inputs",
			opts: Options{Input: "x.json", Graph: testGraph(t), Algorithm: "circle"},
			code: errors.ErrCodeInvalidInput,
		},
		{name: "no algorithm", opts: Options{Graph: testGraph(t)}, code: errors.ErrCodeInvalidOption},
		{
			name: "unknown algorithm",
			opts: Options{Graph: testGraph(t), Algorithm: "spiral"},
			code: errors.ErrCodeUnknownLayout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(ctx, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExecuteMissingInputFile(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	_, err := r.Execute(context.Background(), Options{
		Input:     filepath.Join(t.TempDir(), "nope.json"),
		Algorithm: "circle",
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("err = %v, want FILE_NOT_FOUND", err)
	}
}
