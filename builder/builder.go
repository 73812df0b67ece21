// Package builder generates small synthetic edge lists, as (u, v)
// external-ID pairs, for the fixed topologies used throughout this
// repo's tests: triangles, paths, bridged triangle pairs, and stars.
//
// Contract, shared by every constructor here: vertex IDs are 1-based
// and contiguous, edges are emitted in a fixed, documented order, and
// every topology is undirected and unweighted — the only kind of graph
// this engine ever builds.
package builder

// Triangle returns the 3-cycle on nodes {1,2,3}: edges (1,2),(2,3),(1,3).
func Triangle() [][2]int {
	return [][2]int{{1, 2}, {2, 3}, {1, 3}}
}

// Path returns the path 1-2-...-n as n-1 consecutive edges. Panics if
// n < 2.
func Path(n int) [][2]int {
	if n < 2 {
		panic("builder: Path requires n >= 2")
	}
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return edges
}

// BridgedTriangles returns two triangles, {1,2,3} and {4,5,6}, joined by
// a single bridge edge (3,4).
func BridgedTriangles() [][2]int {
	return [][2]int{
		{1, 2}, {2, 3}, {1, 3},
		{3, 4},
		{4, 5}, {5, 6}, {4, 6},
	}
}

// DisjointTriangles returns the same two triangles as BridgedTriangles
// but without the connecting edge, so the resulting graph already has
// two components.
func DisjointTriangles() [][2]int {
	return [][2]int{
		{1, 2}, {2, 3}, {1, 3},
		{4, 5}, {5, 6}, {4, 6},
	}
}

// Star returns a star with hub 1 and leaves 2..n. Panics if n < 2.
func Star(n int) [][2]int {
	if n < 2 {
		panic("builder: Star requires n >= 2")
	}
	edges := make([][2]int, 0, n-1)
	for leaf := 2; leaf <= n; leaf++ {
		edges = append(edges, [2]int{1, leaf})
	}

	return edges
}

// Endpoints splits a (u, v) pair slice into the two parallel slices
// csr.Build expects.
func Endpoints(edges [][2]int) (u, v []int) {
	u = make([]int, len(edges))
	v = make([]int, len(edges))
	for i, e := range edges {
		u[i], v[i] = e[0], e[1]
	}

	return u, v
}
