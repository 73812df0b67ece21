// Package betweenness accumulates sampled edge-betweenness centrality on
// top of package bfsinfo's BFS engine: for each sampled source, run a BFS
// and then drain its traversal stack in reverse to propagate dependency
// scores back onto the edges that carried shortest paths.
//
// The reverse-stack dependency accumulation is the same technique
// gonum's now-superseded network.Betweenness (network/brandes.go) uses
// for node betweenness — the δ/σ/stack variable shapes there are this
// package's direct model, adapted from node to edge scores via
// csr.Graph.EdgeIDOf.
package betweenness

import (
	"math"
	"sort"

	"github.com/tifaniobri/comdetect/bfsinfo"
	"github.com/tifaniobri/comdetect/csr"
)

// SelectSample returns the internal indices of the top ⌈rate·n⌉ nodes by
// degree, ties broken by ascending internal index for determinism. The
// returned slice is itself sorted ascending by internal index.
//
// Degree here is csr.Graph.Degree, the frozen construction-time degree —
// sample selection always reflects pre-cut degrees, per spec §4.9 step 2
// ("the sample is fixed once at the start; degrees are frozen at
// pre-cut values").
func SelectSample(g *csr.Graph, rate float64) []int {
	n := g.N()
	size := int(math.Ceil(rate * float64(n)))
	if size < 1 {
		size = 1
	}
	if size > n {
		size = n
	}

	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		di, dj := g.Degree(nodes[i]), g.Degree(nodes[j])
		if di != dj {
			return di > dj // higher degree first
		}

		return nodes[i] < nodes[j] // ascending index tiebreak
	})

	sample := append([]int(nil), nodes[:size]...)
	sort.Ints(sample)

	return sample
}

// Accumulator holds the reusable δ (dependency) scratch array for the
// reverse-stack pass, sized once and zeroed before each source instead of
// being reallocated.
type Accumulator struct {
	delta []float32
}

// NewAccumulator allocates an Accumulator for a graph with n nodes.
func NewAccumulator(n int) *Accumulator {
	return &Accumulator{delta: make([]float32, n)}
}

// AccumulateFrom drains info.Stack (which must hold the result of a BFS
// info.Run already performed) from the end backwards, adding each edge's
// share of dependency into g's edge-betweenness accumulator.
//
// Each contribution is halved before it reaches the edge: a pass over
// every source sees each unordered pair of nodes from both ends, so at
// sample rate 1.0 the scores are the usual undirected edge betweenness
// (path 1-2-3-4: 3, 4, 3). Halving scales every score alike and does not
// change which edges tie for the maximum.
//
// Numeric semantics: all arithmetic here (the per-step contribution c,
// the running δ, and the edge_bet accumulation) is in 32-bit float, per
// spec §4.8, so that repeated runs over the same accumulation order are
// bitwise reproducible.
func (acc *Accumulator) AccumulateFrom(g *csr.Graph, info *bfsinfo.Info) error {
	for i := range acc.delta {
		acc.delta[i] = 0
	}

	stack := info.Stack.Slice()
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, u := range info.Pred[w].Slice() {
			ratio := float32(info.Sigma[u] / info.Sigma[w])
			c := ratio * (1 + acc.delta[w])
			acc.delta[u] += c

			id, err := g.EdgeIDOf(u, w)
			if err != nil {
				return err
			}
			g.AddEdgeBetweenness(id, c/2)
		}
	}

	return nil
}

// Run computes sampled edge-betweenness on g's currently-live edges: for
// every source in sample, reset+run info, then accumulate its
// contribution. Callers are responsible for calling g.ResetBetweenness
// beforehand (the Girvan–Newman driver does this at the start of every
// iteration; its sample is selected once, before the first iteration).
func Run(g *csr.Graph, info *bfsinfo.Info, acc *Accumulator, sample []int) error {
	for _, s := range sample {
		if err := info.Reset(s); err != nil {
			return err
		}
		info.Run(g)
		if err := acc.AccumulateFrom(g, info); err != nil {
			return err
		}
	}

	return nil
}

// Maxima scans every live edge in ascending edge-ID order (the
// reproducible order spec §4.8 requires for extracting the maximum) and
// returns the IDs of all edges whose accumulated betweenness equals the
// maximum found. Ties are all returned, per spec §4.8/§4.9's
// correctness-preserving multi-cut variant.
func Maxima(g *csr.Graph) []int {
	var best float32
	var ids []int
	for id := 1; id <= g.M(); id++ {
		if !g.IsLive(id) {
			continue
		}
		score := g.EdgeBetweenness(id)
		switch {
		case len(ids) == 0 || score > best:
			best = score
			ids = ids[:0]
			ids = append(ids, id)
		case score == best:
			ids = append(ids, id)
		}
	}

	return ids
}
