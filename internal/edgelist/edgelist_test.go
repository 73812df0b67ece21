package edgelist_test

import (
	"testing"

	"github.com/tifaniobri/comdetect/internal/edgelist"
)

func TestResetIDs(t *testing.T) {
	l := edgelist.New(3)
	l.ResetIDs()
	for i, id := range l.ID {
		if id != i {
			t.Fatalf("ID[%d] = %d, want %d", i, id, i)
		}
	}
}

func TestFindLargestEndpoint(t *testing.T) {
	l := edgelist.New(4)
	l.U = []int{3, 17, 9, 2}
	l.V = []int{100, 1, 0, 0}
	if got := l.FindLargestEndpoint(edgelist.ColU); got != 17 {
		t.Fatalf("largest U = %d, want 17", got)
	}
	if got := l.FindLargestEndpoint(edgelist.ColV); got != 100 {
		t.Fatalf("largest V = %d, want 100", got)
	}
}

func TestFindLargestEndpointEmpty(t *testing.T) {
	l := edgelist.New(0)
	if got := l.FindLargestEndpoint(edgelist.ColU); got != 0 {
		t.Fatalf("largest of empty list = %d, want 0", got)
	}
}

func TestSortByAscendingAndStable(t *testing.T) {
	l := &edgelist.List{
		U:  []int{5, 1, 5, 3, 1},
		V:  []int{0, 1, 2, 3, 4},
		ID: []int{0, 1, 2, 3, 4},
	}
	l.SortBy(edgelist.ColU)

	wantU := []int{1, 1, 3, 5, 5}
	for i, w := range wantU {
		if l.U[i] != w {
			t.Fatalf("U[%d] = %d, want %d", i, l.U[i], w)
		}
	}
	// Stability: among equal U values, original relative order (by ID) is kept.
	if l.ID[0] != 1 || l.ID[1] != 4 {
		t.Fatalf("stability violated for U=1 group: IDs = %v", l.ID[:2])
	}
	if l.ID[3] != 0 || l.ID[4] != 2 {
		t.Fatalf("stability violated for U=5 group: IDs = %v", l.ID[3:5])
	}
	// The V column must travel with its matching row.
	for i, id := range l.ID {
		switch id {
		case 0:
			if l.V[i] != 0 {
				t.Fatalf("row id=0 lost its V value")
			}
		case 1:
			if l.V[i] != 1 {
				t.Fatalf("row id=1 lost its V value")
			}
		case 2:
			if l.V[i] != 2 {
				t.Fatalf("row id=2 lost its V value")
			}
		case 3:
			if l.V[i] != 3 {
				t.Fatalf("row id=3 lost its V value")
			}
		case 4:
			if l.V[i] != 4 {
				t.Fatalf("row id=4 lost its V value")
			}
		}
	}
}

func TestSortByEmptyList(t *testing.T) {
	l := edgelist.New(0)
	l.SortBy(edgelist.ColU) // must not panic
}

func TestSortByMultiDigit(t *testing.T) {
	l := &edgelist.List{
		U:  []int{123, 45, 999, 7, 1000},
		V:  []int{1, 2, 3, 4, 5},
		ID: []int{0, 1, 2, 3, 4},
	}
	l.SortBy(edgelist.ColU)
	want := []int{7, 45, 123, 999, 1000}
	for i, w := range want {
		if l.U[i] != w {
			t.Fatalf("U[%d] = %d, want %d", i, l.U[i], w)
		}
	}
}
