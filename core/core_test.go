package core_test

import (
	"errors"
	"testing"

	"github.com/tifaniobri/comdetect/core"
)

func TestAddEdgeRegistersVertices(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasVertex(1) || !g.HasVertex(2) {
		t.Fatal("both endpoints should be registered as vertices")
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(5, 5); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("AddEdge(5,5) = %v, want ErrLoopNotAllowed", err)
	}
}

func TestAddEdgeRejectsDuplicateRegardlessOfOrder(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(2, 1); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("AddEdge(2,1) after AddEdge(1,2) = %v, want ErrMultiEdgeNotAllowed", err)
	}
}

func TestEdgesPreservesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	want := [][2]int{{3, 1}, {1, 2}, {2, 3}}
	for _, e := range want {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge%v: %v", e, err)
		}
	}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVerticesWithoutEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(7)
	if !g.HasVertex(7) {
		t.Fatal("AddVertex should register an isolated vertex")
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}
