package bfsinfo_test

import (
	"fmt"

	"github.com/tifaniobri/comdetect/bfsinfo"
	"github.com/tifaniobri/comdetect/csr"
)

// Example demonstrates running a BFS from node 0 over a 4-node path and
// reading off distances and shortest-path counts.
func Example() {
	g, _, err := csr.Build([]int{1, 2, 3}, []int{2, 3, 4})
	if err != nil {
		panic(err)
	}

	info := bfsinfo.New(g.N())
	if err := info.Reset(0); err != nil {
		panic(err)
	}
	info.Run(g)

	for i := 0; i < g.N(); i++ {
		fmt.Printf("node %d: distance=%d sigma=%v\n", i, info.Distance[i], info.Sigma[i])
	}
	// Output:
	// node 0: distance=0 sigma=1
	// node 1: distance=1 sigma=1
	// node 2: distance=2 sigma=1
	// node 3: distance=3 sigma=1
}
