// Package idmap builds and exposes the bijection between arbitrary
// nonnegative external node IDs (as read from an edge-list file) and the
// dense internal indices [0, n) the CSR graph and algorithm engine use.
//
// Unlike the original comdetect C source (src/edges.c: mapNodeIds,
// IdmapStorage), which keys a process-wide hash table (hcreate) that
// outlives the whole program, the Map here is a local value owned by
// whoever calls Build. Its forward scratch state does not escape past
// construction: only the small forward map and the reverse slice survive.
package idmap

import (
	"errors"
	"sort"
)

// ErrUnknownNode is returned by ToInternal when the given external ID was
// never part of the edge set the Map was built from.
var ErrUnknownNode = errors.New("idmap: unknown external node id")

// Map is the external-ID ↔ internal-index bijection for one graph.
type Map struct {
	forward map[int]int // external -> internal
	reverse []int       // internal -> external, len == n
}

// Build collects every value in externals, deduplicates and sorts them
// ascending, and assigns each its position as the internal index — so
// internal indices are assigned in ascending order of external ID.
//
// Complexity: O(k log k) where k = len(externals), dominated by the sort.
func Build(externals []int) *Map {
	// Deduplicate via a throwaway set; this allocation does not survive
	// past Build, matching the spec's "release temporary allocations"
	// requirement.
	seen := make(map[int]struct{}, len(externals))
	uniq := make([]int, 0, len(externals))
	for _, v := range externals {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			uniq = append(uniq, v)
		}
	}
	sort.Ints(uniq)

	m := &Map{
		forward: make(map[int]int, len(uniq)),
		reverse: uniq,
	}
	for i, ext := range uniq {
		m.forward[ext] = i
	}

	return m
}

// Len returns n, the number of distinct nodes.
func (m *Map) Len() int { return len(m.reverse) }

// ToInternal resolves an external ID to its dense internal index.
// Returns ErrUnknownNode if external was not part of the build set.
func (m *Map) ToInternal(external int) (int, error) {
	internal, ok := m.forward[external]
	if !ok {
		return 0, ErrUnknownNode
	}

	return internal, nil
}

// ToExternal resolves an internal index back to its original external ID.
// It panics on an out-of-range index — callers only ever pass indices in
// [0, n) that this Map itself produced or that are known to be valid.
func (m *Map) ToExternal(internal int) int {
	return m.reverse[internal]
}
