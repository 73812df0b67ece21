// Package gn implements the Girvan–Newman divisive community-detection
// driver: iterate betweenness, cut the tied maxima, recount components,
// stop once the target community count is reached.
//
// The iterate/cut/measure loop here plays the same role as
// prim_kruskal's MSTOptions/Compute dispatcher — a functional-options
// Config plus one public entry point — generalized from "pick an MST
// algorithm" to "drive betweenness-guided edge cuts."
package gn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tifaniobri/comdetect/betweenness"
	"github.com/tifaniobri/comdetect/bfsinfo"
	"github.com/tifaniobri/comdetect/csr"
	"github.com/tifaniobri/comdetect/internal/unionfind"
)

// ErrInvalidTarget is returned by Run if targetCommunities < 1.
var ErrInvalidTarget = errors.New("gn: target community count must be >= 1")

// ErrInvalidSampleRate is returned by Run if sampleRate is outside (0, 1].
var ErrInvalidSampleRate = errors.New("gn: sample rate must be in (0, 1]")

// Config holds the parameters of one Girvan–Newman run.
type Config struct {
	TargetCommunities int
	SampleRate        float64
}

// Option configures a Config.
type Option func(*Config)

// WithTargetCommunities sets the number of communities to stop at.
func WithTargetCommunities(k int) Option {
	return func(c *Config) { c.TargetCommunities = k }
}

// WithSampleRate sets the fraction of high-degree nodes sampled as BFS
// sources for betweenness estimation.
func WithSampleRate(r float64) Option {
	return func(c *Config) { c.SampleRate = r }
}

// DefaultConfig returns a Config requesting two communities at the exact
// (unsampled) betweenness rate.
func DefaultConfig() Config {
	return Config{TargetCommunities: 2, SampleRate: 1.0}
}

// Result is the outcome of a Run: the partition into communities (each a
// sorted slice of internal node indices, communities ordered by ascending
// smallest member) and the actual count found, which may exceed the
// requested target when a tied cut splits more than one component at
// once.
type Result struct {
	Communities [][]int
	ActualCount int
	Iterations  int
}

// Run drives the iterate-cut-measure loop of spec §4.9 to completion and
// returns the resulting partition.
//
// State machine per iteration: zero edge_bet, run sampled betweenness
// over all live edges, cut every edge tied for maximum betweenness,
// rebuild union-find over the live subgraph, and stop once the component
// count reaches cfg.TargetCommunities. Cutting strictly decreases the
// live edge count, so the loop terminates in at most g.M() iterations;
// if the graph goes edgeless first, the component count converges to
// g.N() singleton communities.
func Run(g *csr.Graph, opts ...Option) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TargetCommunities < 1 {
		return Result{}, ErrInvalidTarget
	}
	if cfg.SampleRate <= 0 || cfg.SampleRate > 1 {
		return Result{}, ErrInvalidSampleRate
	}

	info := bfsinfo.New(g.N())
	acc := betweenness.NewAccumulator(g.N())
	sample := betweenness.SelectSample(g, cfg.SampleRate)

	iteration := 1
	componentCount := countComponents(g)
	for componentCount < cfg.TargetCommunities && g.LiveEdgeCount() > 0 {
		g.ResetBetweenness()
		if err := betweenness.Run(g, info, acc, sample); err != nil {
			return Result{}, fmt.Errorf("gn: iteration %d: %w", iteration, err)
		}

		maxima := betweenness.Maxima(g)
		for _, id := range maxima {
			a, b, ok := liveEndpointsOf(g, id)
			if !ok {
				continue
			}
			if err := g.Cut(a, b, iteration); err != nil {
				return Result{}, fmt.Errorf("gn: iteration %d: %w", iteration, err)
			}
		}

		componentCount = countComponents(g)
		iteration++
	}

	return Result{
		Communities: label(g),
		ActualCount: componentCount,
		Iterations:  iteration - 1,
	}, nil
}

// liveEndpointsOf finds one pair of internal endpoints for a still-live
// edge id by scanning adjacency. Called right before cutting, so the
// edge is guaranteed live unless a previous tied cut in this same
// iteration already removed it as the other half of a self-paired scan.
func liveEndpointsOf(g *csr.Graph, id int) (a, b int, ok bool) {
	for i := 0; i < g.N(); i++ {
		targets, ids := g.NeighborsOf(i)
		for k, t := range targets {
			if ids[k] == id {
				return i, t, true
			}
		}
	}

	return 0, 0, false
}

// countComponents rebuilds a fresh union-find over the graph's live
// half-edges and returns the resulting component count.
func countComponents(g *csr.Graph) int {
	uf := unionfind.New(g.N())
	for i := 0; i < g.N(); i++ {
		targets, ids := g.NeighborsOf(i)
		for k, t := range targets {
			if ids[k] > 0 && i < t {
				uf.Union(i, t)
			}
		}
	}

	return uf.CountComponents()
}

// label performs the community-labeling pass of spec §4.9: union every
// live half-edge (u, v) with u < v, then emit the equivalence classes of
// find in ascending order of smallest member.
func label(g *csr.Graph) [][]int {
	uf := unionfind.New(g.N())
	for i := 0; i < g.N(); i++ {
		targets, ids := g.NeighborsOf(i)
		for k, t := range targets {
			if ids[k] > 0 && i < t {
				uf.Union(i, t)
			}
		}
	}

	byRoot := make(map[int][]int)
	for i := 0; i < g.N(); i++ {
		root := uf.Find(i)
		byRoot[root] = append(byRoot[root], i)
	}

	communities := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Ints(members)
		communities = append(communities, members)
	}
	sort.Slice(communities, func(i, j int) bool {
		return communities[i][0] < communities[j][0]
	})

	return communities
}
