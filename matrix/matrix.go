// Package matrix provides a dense adjacency-matrix oracle over a
// csr.Graph, used only in tests to verify symmetric closure and
// shared edge IDs independently of the CSR binary search that
// NeighborsOf/HasEdge rely on.
//
// Grounded on the teacher's AdjacencyMatrix (matrix/adjacency_matrix.go)
// dense [][]float64 form, narrowed here to a boolean liveness grid since
// this engine never weights edges.
package matrix

import "github.com/tifaniobri/comdetect/csr"

// Dense is an n×n boolean adjacency matrix built from a csr.Graph's
// currently-live edges.
type Dense struct {
	n    int
	data [][]bool
}

// Build constructs a Dense matrix from g's live edges.
func Build(g *csr.Graph) Dense {
	n := g.N()
	data := make([][]bool, n)
	for i := range data {
		data[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		targets, ids := g.NeighborsOf(i)
		for k, v := range targets {
			if ids[k] > 0 {
				data[i][v] = true
			}
		}
	}

	return Dense{n: n, data: data}
}

// IsSymmetric reports whether the matrix is equal to its own transpose,
// i.e. whether every live edge appears in both directions.
func (d Dense) IsSymmetric() bool {
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			if d.data[i][j] != d.data[j][i] {
				return false
			}
		}
	}

	return true
}

// Has reports whether (i, j) is marked live in the matrix.
func (d Dense) Has(i, j int) bool {
	return d.data[i][j]
}

// EdgeCount returns the number of live undirected edges represented,
// i.e. half the number of set cells.
func (d Dense) EdgeCount() int {
	count := 0
	for i := 0; i < d.n; i++ {
		for j := i + 1; j < d.n; j++ {
			if d.data[i][j] {
				count++
			}
		}
	}

	return count
}
