// Package edgelist implements a mutable (u, v, id) edge list and the
// least-significant-digit radix sort used to group half-edges by one of
// their endpoints.
//
// This mirrors the original comdetect C implementation's EdgeList /
// sortEdges (src/edges.c), translated idiomatically: base-10 buckets,
// stable ordering, and the id (and non-sort endpoint) column carried
// alongside the sorted column.
package edgelist

// List holds three parallel arrays of equal length: U, V, and ID. U[i],
// V[i], and ID[i] together describe one (possibly directed or half-)
// edge.
type List struct {
	U  []int
	V  []int
	ID []int
}

// New allocates a List of the given length with all columns zeroed.
func New(length int) *List {
	return &List{
		U:  make([]int, length),
		V:  make([]int, length),
		ID: make([]int, length),
	}
}

// Len returns the number of edges in the list.
func (l *List) Len() int { return len(l.U) }

// ResetIDs sets ID[i] = i for every position, matching the original's
// resetEdgeIds.
func (l *List) ResetIDs() {
	for i := range l.ID {
		l.ID[i] = i
	}
}

// Col selects a column by index: 0 for U, 1 for V. It mirrors the
// original's ICOL/JCOL convention.
const (
	ColU = 0
	ColV = 1
)

// column returns the slice for the requested column, and other returns
// the slice for the opposite column — used by SortBy so the same loop
// body handles both directions.
func (l *List) column(col int) []int {
	if col == ColU {
		return l.U
	}

	return l.V
}

func (l *List) other(col int) []int {
	if col == ColU {
		return l.V
	}

	return l.U
}

// FindLargestEndpoint returns the maximum value in the given column (0
// for U, 1 for V). It controls how many radix passes SortBy performs.
// Returns 0 for an empty list.
func (l *List) FindLargestEndpoint(col int) int {
	c := l.column(col)
	largest := 0
	for _, v := range c {
		if v > largest {
			largest = v
		}
	}

	return largest
}

// SortBy stably sorts the edge list ascending by the given column (0 for
// U, 1 for V), carrying ID and the other column along. It uses
// least-significant-digit radix sort in base 10: the exact base is an
// implementation detail, but base 10 matches the original comdetect
// source (src/edges.c:sortEdges) and keeps bucket counts small and
// predictable.
//
// Complexity: O(d * n) where d is the number of decimal digits in the
// largest value in the sorted column, n is the list length.
func (l *List) SortBy(col int) {
	n := l.Len()
	if n == 0 {
		return
	}

	const base = 10
	largest := l.FindLargestEndpoint(col)

	sortCol := l.column(col)
	otherCol := l.other(col)

	scratchSort := make([]int, n)
	scratchOther := make([]int, n)
	scratchID := make([]int, n)

	for sigDigit := 1; largest/sigDigit > 0; sigDigit *= base {
		var bucket [base]int
		for i := 0; i < n; i++ {
			bucket[(sortCol[i]/sigDigit)%base]++
		}
		for i := 1; i < base; i++ {
			bucket[i] += bucket[i-1]
		}
		// Walk right-to-left so that entries sharing a digit keep their
		// relative order — this is what makes the sort stable.
		for i := n - 1; i >= 0; i-- {
			digit := (sortCol[i] / sigDigit) % base
			bucket[digit]--
			loc := bucket[digit]
			scratchSort[loc] = sortCol[i]
			scratchOther[loc] = otherCol[i]
			scratchID[loc] = l.ID[i]
		}
		copy(sortCol, scratchSort)
		copy(otherCol, scratchOther)
		copy(l.ID, scratchID)
	}
}
