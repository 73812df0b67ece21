// Package dfs provides an iterative, stack-based depth-first traversal
// over a csr.Graph's live half-edges. It exists to give gn's tests a
// second, independent way to count connected components, cross-checked
// against internal/unionfind — the two should always agree.
//
// The iterative stack-based shape follows the teacher's dfsWalker
// (dfs/dfs.go), simplified: no hooks, no depth limit, no
// directed/mixed-edge handling, since this engine's graphs are never
// directed.
package dfs

import (
	"sort"

	"github.com/tifaniobri/comdetect/csr"
)

// ConnectedComponents returns the connected components of g's current
// live subgraph, each as a sorted slice of internal node indices, in no
// particular order across components.
func ConnectedComponents(g *csr.Graph) [][]int {
	visited := make([]bool, g.N())
	var components [][]int

	for start := 0; start < g.N(); start++ {
		if visited[start] {
			continue
		}
		components = append(components, walk(g, start, visited))
	}

	return components
}

// walk performs one iterative DFS from start, marking every reached node
// visited, and returns the component's members sorted ascending. The
// traversal itself uses an explicit stack (LIFO).
func walk(g *csr.Graph, start int, visited []bool) []int {
	var component []int
	stack := []int{start}
	visited[start] = true

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		component = append(component, u)

		targets, ids := g.NeighborsOf(u)
		for k, v := range targets {
			if ids[k] <= 0 || visited[v] {
				continue
			}
			visited[v] = true
			stack = append(stack, v)
		}
	}
	sort.Ints(component)

	return component
}
