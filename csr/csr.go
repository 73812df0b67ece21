// Package csr implements the compact compressed-sparse-row representation
// at the heart of the community-detection engine: a dense-indexed,
// immutable-topology undirected graph with bidirectional edge duplication
// and an edge-identity index.
//
// Each undirected edge is stored as two half-edges (one per direction) so
// that neighbor lookup for any node never has to scan another node's
// adjacency list. Both half-edges of one undirected edge share the same
// edge ID; cutting an edge replaces that ID, in both half-edge slots, with
// the negative of the iteration number at which it was cut. A half-edge
// with a non-positive edge ID is invisible to traversal.
//
// This mirrors the original comdetect C SparseUGraph (graph.h) and its
// rowCompressEdges builder, generalized with the edge-ID/cut-marker and
// edge-betweenness accumulator fields the Girvan–Newman driver needs.
package csr

import (
	"errors"
	"sort"

	"github.com/tifaniobri/comdetect/internal/edgelist"
	"github.com/tifaniobri/comdetect/internal/idmap"
)

// ErrNoSuchEdge is returned by EdgeIDOf and Cut when the requested edge
// does not exist, or exists but has already been cut.
var ErrNoSuchEdge = errors.New("csr: no such live edge")

// ErrSelfLoop is returned by Build if an edge has equal endpoints.
var ErrSelfLoop = errors.New("csr: self-loop not allowed")

// ErrDuplicateEdge is returned by Build if the same undirected edge
// appears more than once.
var ErrDuplicateEdge = errors.New("csr: duplicate edge")

// Graph is the compressed-sparse-row undirected graph. Its topology is
// fixed at construction time; the only mutation thereafter is Cut, which
// flips an edge's sign without touching index or neighbors.
type Graph struct {
	n int // |V|
	m int // |E|, undirected edge count

	index     []int     // len n+1, prefix-sum offsets into neighbors/edgeID
	neighbors []int     // len 2m, half-edge targets grouped by source, sorted per source
	edgeID    []int     // len 2m, parallel to neighbors; positive = live, negative = cut(-iter)
	edgeBet   []float32 // len m, accumulated betweenness per undirected edge
	degree    []int     // len n, frozen at construction; never updated by Cut
	live      []bool    // len m, O(1) liveness check without scanning half-edges

	nodeExternal []int // len n, external ID per internal index
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// M returns the number of undirected edges (live or cut).
func (g *Graph) M() int { return g.m }

// Degree returns the original degree of node i, computed once at
// construction and never updated by Cut. Sample selection in package
// betweenness relies on this being the pre-cut degree; nothing else in
// this engine should read it as "current live neighbor count" — live
// neighbor count must be obtained by walking NeighborsOf and checking
// sign.
func (g *Graph) Degree(i int) int { return g.degree[i] }

// ExternalID returns the original external node ID for internal index i.
func (g *Graph) ExternalID(i int) int { return g.nodeExternal[i] }

// EdgeBetweenness returns the current accumulated betweenness score for
// undirected edge id (1..m).
func (g *Graph) EdgeBetweenness(id int) float32 { return g.edgeBet[id-1] }

// IsLive reports whether undirected edge id has not yet been cut.
func (g *Graph) IsLive(id int) bool { return g.live[id-1] }

// LiveEdgeCount returns the number of undirected edges that have not yet
// been cut.
func (g *Graph) LiveEdgeCount() int {
	count := 0
	for _, alive := range g.live {
		if alive {
			count++
		}
	}

	return count
}

// AddEdgeBetweenness adds delta to the accumulated betweenness score for
// undirected edge id.
func (g *Graph) AddEdgeBetweenness(id int, delta float32) { g.edgeBet[id-1] += delta }

// ResetBetweenness zeros every edge's accumulated betweenness score,
// called at the start of every Girvan–Newman iteration (spec §4.9 step 1).
func (g *Graph) ResetBetweenness() {
	for i := range g.edgeBet {
		g.edgeBet[i] = 0
	}
}

// NeighborsOf returns the raw half-edge slice for node i: targets
// (ascending) and their parallel signed edge IDs. Positive IDs are live;
// non-positive IDs are cut and should be skipped by traversal.
func (g *Graph) NeighborsOf(i int) (targets []int, ids []int) {
	lo, hi := g.index[i], g.index[i+1]

	return g.neighbors[lo:hi], g.edgeID[lo:hi]
}

// HasEdge reports whether a live edge exists between a and b. It binary
// searches for b within a's adjacency slice (targets are sorted ascending
// per invariant 4) and checks the edge ID's sign.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.findHalfEdge(a, b)

	return ok
}

// EdgeIDOf returns the positive (live) edge ID shared by the two
// half-edges of the undirected edge between a and b. Returns
// ErrNoSuchEdge if there is no such live edge.
func (g *Graph) EdgeIDOf(a, b int) (int, error) {
	k, ok := g.findHalfEdge(a, b)
	if !ok {
		return 0, ErrNoSuchEdge
	}

	return g.edgeID[k], nil
}

// findHalfEdge binary-searches node a's adjacency slice for target b and
// returns the absolute position in neighbors/edgeID, plus whether a live
// (positive-ID) edge was found there.
func (g *Graph) findHalfEdge(a, b int) (int, bool) {
	lo, hi := g.index[a], g.index[a+1]
	targets := g.neighbors[lo:hi]
	pos := sort.SearchInts(targets, b)
	if pos == len(targets) || targets[pos] != b {
		return 0, false
	}
	k := lo + pos

	return k, g.edgeID[k] > 0
}

// Cut marks the undirected edge between a and b as removed at the given
// iteration: both of its half-edges have their edge ID replaced with
// -iter. Returns ErrNoSuchEdge if the edge does not exist or is already
// cut.
func (g *Graph) Cut(a, b, iter int) error {
	ka, ok := g.findHalfEdge(a, b)
	if !ok {
		return ErrNoSuchEdge
	}
	kb, ok := g.findHalfEdge(b, a)
	if !ok {
		// Invariant 1 guarantees this never happens for a well-formed Graph.
		return ErrNoSuchEdge
	}
	id := g.edgeID[ka]
	g.edgeID[ka] = -iter
	g.edgeID[kb] = -iter
	g.live[id-1] = false

	return nil
}

// Build constructs a CSR Graph from raw (external-ID) edge endpoints. It
// validates the identifier set, rejects self-loops and duplicate edges
// (surfacing ErrSelfLoop / ErrDuplicateEdge — the CSR-level half of the
// ingest layer's MalformedInput check), then performs the doubled-edge
// radix sort described in spec §4.6.
//
// Steps:
//  1. Build the identifier map and rewrite endpoints to internal indices.
//  2. Form a doubled edge list: for each (u, v, e) append both (u, v, e)
//     and (v, u, e).
//  3. Radix-sort by target, then stably radix-sort by source: half-edges
//     end up grouped by source, sorted by target within each group.
//  4. Compute index as the prefix sum of source-group sizes.
//  5. Assign each undirected edge a fresh ID 1..m, shared by both
//     half-edges.
//  6. Freeze degree[i] = index[i+1]-index[i]; zero edgeBet.
func Build(rawU, rawV []int) (*Graph, *idmap.Map, error) {
	if len(rawU) != len(rawV) {
		panic("csr: rawU and rawV must have equal length")
	}
	m := len(rawU)

	externals := make([]int, 0, 2*m)
	externals = append(externals, rawU...)
	externals = append(externals, rawV...)
	idm := idmap.Build(externals)
	n := idm.Len()

	u := make([]int, m)
	v := make([]int, m)
	seen := make(map[[2]int]struct{}, m)
	for i := 0; i < m; i++ {
		ui, err := idm.ToInternal(rawU[i])
		if err != nil {
			return nil, nil, err
		}
		vi, err := idm.ToInternal(rawV[i])
		if err != nil {
			return nil, nil, err
		}
		if ui == vi {
			return nil, nil, ErrSelfLoop
		}
		key := [2]int{ui, vi}
		if ui > vi {
			key = [2]int{vi, ui}
		}
		if _, dup := seen[key]; dup {
			return nil, nil, ErrDuplicateEdge
		}
		seen[key] = struct{}{}
		u[i], v[i] = ui, vi
	}

	// Step 2: double the edge list, fresh IDs 1..m shared by both halves.
	doubled := edgelist.New(2 * m)
	for i := 0; i < m; i++ {
		eid := i + 1
		doubled.U[i], doubled.V[i], doubled.ID[i] = u[i], v[i], eid
		doubled.U[m+i], doubled.V[m+i], doubled.ID[m+i] = v[i], u[i], eid
	}

	// Step 3: sort by target then stably by source.
	doubled.SortBy(edgelist.ColV)
	doubled.SortBy(edgelist.ColU)

	// Step 4: prefix-sum index from per-source group sizes.
	index := make([]int, n+1)
	for i := 0; i < 2*m; i++ {
		index[doubled.U[i]+1]++
	}
	for i := 1; i <= n; i++ {
		index[i] += index[i-1]
	}

	nodeExternal := make([]int, n)
	for i := 0; i < n; i++ {
		nodeExternal[i] = idm.ToExternal(i)
	}

	g := &Graph{
		n:            n,
		m:            m,
		index:        index,
		neighbors:    append([]int(nil), doubled.V...),
		edgeID:       append([]int(nil), doubled.ID...),
		edgeBet:      make([]float32, m),
		degree:       make([]int, n),
		nodeExternal: nodeExternal,
	}
	g.live = make([]bool, m)
	for i := range g.live {
		g.live[i] = true
	}
	for i := 0; i < n; i++ {
		g.degree[i] = g.index[i+1] - g.index[i]
	}

	return g, idm, nil
}

// Isolated constructs a single-node, zero-edge Graph for external ID
// external. Build can never produce this shape on its own — every node it
// creates comes from an edge endpoint — so Isolated exists solely to reach
// the n=1, m=0 boundary named in spec §8.
func Isolated(external int) (*Graph, *idmap.Map) {
	idm := idmap.Build([]int{external})
	g := &Graph{
		n:            1,
		m:            0,
		index:        []int{0, 0},
		neighbors:    []int{},
		edgeID:       []int{},
		edgeBet:      []float32{},
		degree:       []int{0},
		live:         []bool{},
		nodeExternal: []int{external},
	}

	return g, idm
}
