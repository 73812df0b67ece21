// Package comdetect partitions a sparse undirected graph into
// communities by repeatedly cutting its highest edge-betweenness edges —
// the divisive Girvan–Newman algorithm — until the graph splits into a
// target number of connected components.
//
// What is comdetect?
//
//	A small, dependency-light pipeline that brings together:
//
//	  - CSR graph construction: doubled, radix-sorted half-edges with an
//	    edge-identity index (csr)
//	  - Brandes-style BFS bookkeeping: distances, σ, multi-parent
//	    predecessor sets, a distance-ordered stack (bfsinfo)
//	  - Sampled edge-betweenness accumulation, reverse-stack dependency
//	    propagation (betweenness)
//	  - The iterate-cut-measure driver itself: zero, sample, accumulate,
//	    cut the tied maxima, recount components (gn)
//
// Everything is organized under these subpackages:
//
//	ingest/      — edge-list file parsing, sentinel input errors
//	csr/         — the compressed-sparse-row graph and its cut operation
//	bfsinfo/     — single-source BFS producing Brandes' per-node bookkeeping
//	betweenness/ — sample selection and edge-betweenness accumulation
//	gn/          — the Girvan–Newman driver and community labeling
//	cmd/comdetect/ — the command-line entry point
//
// Quick shape:
//
//	input edges -> csr.Build -> gn.Run(targetCommunities) -> community labels
//
//	go get github.com/tifaniobri/comdetect
package comdetect
