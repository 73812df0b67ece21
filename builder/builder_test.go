package builder_test

import (
	"testing"

	"github.com/tifaniobri/comdetect/builder"
	"github.com/tifaniobri/comdetect/csr"
)

func TestTriangleBuildsThreeEdges(t *testing.T) {
	u, v := builder.Endpoints(builder.Triangle())
	g, _, err := csr.Build(u, v)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.N() != 3 || g.M() != 3 {
		t.Fatalf("N,M = %d,%d want 3,3", g.N(), g.M())
	}
}

func TestPathPanicsBelowTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Path(1) should panic")
		}
	}()
	builder.Path(1)
}

func TestBridgedTrianglesShape(t *testing.T) {
	u, v := builder.Endpoints(builder.BridgedTriangles())
	g, _, err := csr.Build(u, v)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.N() != 6 || g.M() != 7 {
		t.Fatalf("N,M = %d,%d want 6,7", g.N(), g.M())
	}
}

func TestDisjointTrianglesHasNoBridge(t *testing.T) {
	u, v := builder.Endpoints(builder.DisjointTriangles())
	g, idm, err := csr.Build(u, v)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	left, err := idm.ToInternal(3)
	if err != nil {
		t.Fatalf("ToInternal: %v", err)
	}
	right, err := idm.ToInternal(4)
	if err != nil {
		t.Fatalf("ToInternal: %v", err)
	}
	if g.HasEdge(left, right) {
		t.Fatal("disjoint triangles should have no edge between node 3 and node 4")
	}
}

func TestStarShape(t *testing.T) {
	u, v := builder.Endpoints(builder.Star(5))
	g, _, err := csr.Build(u, v)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.N() != 5 || g.M() != 4 {
		t.Fatalf("N,M = %d,%d want 5,4", g.N(), g.M())
	}
}
