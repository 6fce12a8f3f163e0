package layout

import (
	"testing"

	"github.com/lattica/lattica/pkg/errors"
)

func TestGraphToTreeStrictTree(t *testing.T) {
	g := buildGraph(t, true, 4, [][2]int{{0, 1}, {0, 2}, {2, 3}})
	tree, err := GraphToTree(g, ModeOut)
	if err != nil {
		t.Fatalf("GraphToTree: %v", err)
	}
	if got := tree.Graph.VertexCount(); got != 4 {
		t.Fatalf("tree has %d vertices, want 4", got)
	}
	if len(tree.Notices) != 0 {
		t.Errorf("unexpected notices: %v", tree.Notices)
	}
	// Preorder with children sorted by index: 0, 1, 2, 3.
	wantOrigin := []int{0, 1, 2, 3}
	for i, want := range wantOrigin {
		if tree.Origin[i] != want {
			t.Errorf("Origin[%d] = %d, want %d", i, tree.Origin[i], want)
		}
	}
}

func TestGraphToTreeModeIn(t *testing.T) {
	// Edges point child→parent; vertex 2 is the root under mode "in".
	g := buildGraph(t, true, 3, [][2]int{{0, 2}, {1, 2}})
	tree, err := GraphToTree(g, ModeIn)
	if err != nil {
		t.Fatalf("GraphToTree: %v", err)
	}
	if tree.Origin[0] != 2 {
		t.Errorf("root origin = %d, want 2", tree.Origin[0])
	}
}

func TestGraphToTreeUndirected(t *testing.T) {
	g := buildGraph(t, false, 2, [][2]int{{0, 1}})
	_, err := GraphToTree(g, ModeOut)
	if !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Fatalf("err = %v, want INVALID_GRAPH", err)
	}
}

func TestGraphToTreeNoRoot(t *testing.T) {
	g := buildGraph(t, true, 2, [][2]int{{0, 1}, {1, 0}})
	_, err := GraphToTree(g, ModeOut)
	if !errors.Is(err, errors.ErrCodeNoRoot) {
		t.Fatalf("err = %v, want NO_ROOT", err)
	}
}

func TestGraphToTreeMultipleComponents(t *testing.T) {
	g := buildGraph(t, true, 4, [][2]int{{0, 1}, {2, 3}})
	tree, err := GraphToTree(g, ModeOut)
	if err != nil {
		t.Fatalf("GraphToTree: %v", err)
	}
	if got := tree.Graph.VertexCount(); got != 2 {
		t.Errorf("kept %d vertices, want 2 (first component)", got)
	}
	if !hasNotice(tree.Notices, NoticeMultipleComponents) {
		t.Errorf("missing %s notice", NoticeMultipleComponents)
	}
}

func TestGraphToTreeMultipleRoots(t *testing.T) {
	// Two roots in one component: 0→2←1. Root 0 wins; its subtree is 0, 2.
	g := buildGraph(t, true, 3, [][2]int{{0, 2}, {1, 2}})
	tree, err := GraphToTree(g, ModeOut)
	if err != nil {
		t.Fatalf("GraphToTree: %v", err)
	}
	if !hasNotice(tree.Notices, NoticeMultipleRoots) {
		t.Errorf("missing %s notice", NoticeMultipleRoots)
	}
	if got := tree.Graph.VertexCount(); got != 2 {
		t.Errorf("kept %d vertices, want 2 (reachable from root 0)", got)
	}
}

func TestGraphToTreeUnfoldsDiamond(t *testing.T) {
	// 3 is reachable from both 1 and 2, so it appears twice in the tree.
	g := buildGraph(t, true, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	tree, err := GraphToTree(g, ModeOut)
	if err != nil {
		t.Fatalf("GraphToTree: %v", err)
	}
	if got := tree.Graph.VertexCount(); got != 5 {
		t.Errorf("tree has %d vertices, want 5", got)
	}
	if !hasNotice(tree.Notices, NoticeMultipleParents) {
		t.Errorf("missing %s notice", NoticeMultipleParents)
	}
	dupes := 0
	for _, o := range tree.Origin {
		if o == 3 {
			dupes++
		}
	}
	if dupes != 2 {
		t.Errorf("vertex 3 materialized %d times, want 2", dupes)
	}
}

func TestGraphToTreeCycleBecomesLeaf(t *testing.T) {
	// 0→1→2→1 closes a cycle; the back edge duplicates 1 as a leaf.
	g := buildGraph(t, true, 3, [][2]int{{0, 1}, {1, 2}, {2, 1}})
	tree, err := GraphToTree(g, ModeOut)
	if err != nil {
		t.Fatalf("GraphToTree: %v", err)
	}
	if got := tree.Graph.VertexCount(); got != 4 {
		t.Errorf("tree has %d vertices, want 4", got)
	}
}

func TestHierarchyDefaults(t *testing.T) {
	g := buildGraph(t, true, 3, [][2]int{{0, 1}, {0, 2}})
	tree, err := GraphToTree(g, ModeOut)
	if err != nil {
		t.Fatalf("GraphToTree: %v", err)
	}
	h, err := tree.Hierarchy("", "")
	if err != nil {
		t.Fatalf("Hierarchy: %v", err)
	}
	if h.Parent[0] != -1 {
		t.Errorf("Parent[0] = %d, want -1", h.Parent[0])
	}
	wantWeight := []float64{0, 1, 1}
	for v, want := range wantWeight {
		if h.Weight[v] != want {
			t.Errorf("Weight[%d] = %v, want %v", v, h.Weight[v], want)
		}
	}
	if h.Leaf[0] || !h.Leaf[1] || !h.Leaf[2] {
		t.Errorf("Leaf = %v, want [false true true]", h.Leaf)
	}
}

func TestHierarchyWeights(t *testing.T) {
	t.Run("named attribute", func(t *testing.T) {
		g := buildGraph(t, true, 3, [][2]int{{0, 1}, {0, 2}})
		setAttr(t, g, "size", 0.0, 2.0, 5.0)
		tree, _ := GraphToTree(g, ModeOut)
		h, err := tree.Hierarchy("", "size")
		if err != nil {
			t.Fatalf("Hierarchy: %v", err)
		}
		if h.Weight[1] != 2 || h.Weight[2] != 5 {
			t.Errorf("leaf weights = %v, want [_ 2 5]", h.Weight)
		}
	})
	t.Run("non-positive leaf weight fails", func(t *testing.T) {
		g := buildGraph(t, true, 2, [][2]int{{0, 1}})
		setAttr(t, g, "size", 0.0, -1.0)
		tree, _ := GraphToTree(g, ModeOut)
		_, err := tree.Hierarchy("", "size")
		if !errors.Is(err, errors.ErrCodeInvalidWeight) {
			t.Fatalf("err = %v, want INVALID_WEIGHT", err)
		}
	})
	t.Run("non-numeric attribute fails", func(t *testing.T) {
		g := buildGraph(t, true, 2, [][2]int{{0, 1}})
		setAttr(t, g, "size", "big", "small")
		tree, _ := GraphToTree(g, ModeOut)
		_, err := tree.Hierarchy("", "size")
		if !errors.Is(err, errors.ErrCodeInvalidWeight) {
			t.Fatalf("err = %v, want INVALID_WEIGHT", err)
		}
	})
	t.Run("non-leaf weights ignored with notice", func(t *testing.T) {
		g := buildGraph(t, true, 3, [][2]int{{0, 1}, {0, 2}})
		setAttr(t, g, "size", 9.0, 2.0, 5.0)
		tree, _ := GraphToTree(g, ModeOut)
		h, err := tree.Hierarchy("", "size")
		if err != nil {
			t.Fatalf("Hierarchy: %v", err)
		}
		if h.Weight[0] != 0 {
			t.Errorf("internal weight = %v, want 0", h.Weight[0])
		}
		if !hasNotice(h.Notices, NoticeIgnoredWeights) {
			t.Errorf("missing %s notice", NoticeIgnoredWeights)
		}
	})
}

func TestHierarchyOrder(t *testing.T) {
	g := buildGraph(t, true, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	setAttr(t, g, "rank", 0, 30, 10, 20)
	tree, _ := GraphToTree(g, ModeOut)
	h, err := tree.Hierarchy("rank", "")
	if err != nil {
		t.Fatalf("Hierarchy: %v", err)
	}
	children := h.Children(0)
	want := []int{2, 3, 1} // ascending rank attribute
	for i, c := range children {
		if c != want[i] {
			t.Fatalf("Children(0) = %v, want %v", children, want)
		}
	}
}
