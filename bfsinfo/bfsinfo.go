// Package bfsinfo implements the single-source breadth-first search that
// produces Brandes-style shortest-path bookkeeping: distances, the
// leftmost predecessor, full multi-parent predecessor sets, σ (shortest
// path counts), and a distance-ordered traversal stack.
//
// The walker decomposition here (reset/initialize/visit split into small
// methods operating on mutable state owned by the caller) follows the
// shape of lvlath's bfs.walker (bfs/bfs.go): enqueue, dequeue, and visit
// are separate steps instead of one monolithic loop. The multi-parent
// sigma/pred bookkeeping and the reverse-stack second pass it enables
// are the same bookkeeping gonum's now-superseded network.Betweenness
// (network/brandes.go) computes for node betweenness; this package
// computes only the BFS half, leaving accumulation to package
// betweenness.
package bfsinfo

import (
	"errors"

	"github.com/tifaniobri/comdetect/csr"
	"github.com/tifaniobri/comdetect/internal/xqueue"
	"github.com/tifaniobri/comdetect/internal/xseq"
)

// ErrSourceOutOfRange is returned by Reset if src is not a valid node
// index for the sized Info.
var ErrSourceOutOfRange = errors.New("bfsinfo: source index out of range")

// Info holds everything one BFS run discovers, sized once to the graph's
// node count and reset (not reallocated) between sources.
type Info struct {
	n int

	Distance []int // -1 = undiscovered
	Parent   []int // leftmost predecessor, or -1
	Sigma    []float64
	Pred     []*xseq.Seq // pred[i]: every immediate predecessor of i on some shortest path
	Stack    *xseq.Seq   // nodes in the order BFS finalized them (non-decreasing distance)
	Src      int

	queue *xqueue.Queue // internal frontier, reused across resets
}

// New allocates an Info sized for a graph with n nodes. Allocate once per
// driver run and Reset between sources — Reset never reallocates the
// per-node arrays, the pred sequences, the stack, or the queue.
func New(n int) *Info {
	info := &Info{
		n:        n,
		Distance: make([]int, n),
		Parent:   make([]int, n),
		Sigma:    make([]float64, n),
		Pred:     make([]*xseq.Seq, n),
		Stack:    xseq.NewWithCapacity(n),
		queue:    xqueue.New(maxInt(n, 1)),
	}
	for i := range info.Pred {
		info.Pred[i] = xseq.New()
	}

	return info
}

// Reset restores all arrays to their initial state for a fresh BFS from
// src, in O(n + size(pred[*])) without reallocating.
func (info *Info) Reset(src int) error {
	if src < 0 || src >= info.n {
		return ErrSourceOutOfRange
	}
	for i := 0; i < info.n; i++ {
		info.Distance[i] = -1
		info.Parent[i] = -1
		info.Sigma[i] = 0
		info.Pred[i].Clear()
	}
	info.Stack.Clear()
	info.queue.Clear()
	info.Src = src

	return nil
}

// Run performs the BFS described in Reset's src, over the live
// (positive-edge-ID) half-edges of g. Info must have just been Reset.
//
// Main loop (spec §4.7): pop u, append u to Stack; for each live
// neighbor v of u: if v is undiscovered, set its distance/parent and
// enqueue it; if v is exactly one hop farther than u, accumulate σ and
// record u as one of v's predecessors.
func (info *Info) Run(g *csr.Graph) {
	info.Distance[info.Src] = 0
	info.Sigma[info.Src] = 1
	info.queue.PushBack(info.Src)

	for !info.queue.IsEmpty() {
		u := info.queue.PopFront()
		info.Stack.Append(u)
		info.visitNeighbors(g, u)
	}
}

// visitNeighbors processes every live neighbor of u, per the spec's BFS
// main loop.
func (info *Info) visitNeighbors(g *csr.Graph, u int) {
	targets, ids := g.NeighborsOf(u)
	du := info.Distance[u]
	for k, v := range targets {
		if ids[k] <= 0 {
			continue // cut edge, invisible to BFS
		}
		if info.Distance[v] == -1 {
			info.Distance[v] = du + 1
			info.Parent[v] = u
			info.queue.PushBack(v)
		}
		if info.Distance[v] == du+1 {
			info.Sigma[v] += info.Sigma[u]
			info.Pred[v].Append(u)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
