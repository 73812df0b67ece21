// Package ingest parses the plain-text edge-list input format into the
// raw (external-ID) endpoint arrays package csr.Build consumes.
//
// Each non-empty, non-comment line is "<u> <v>", whitespace-separated
// base-10 nonnegative integers; lines starting with '#' are comments.
// Self-loops and duplicate edges are rejected here, via a core.Graph,
// before csr.Build ever sees them — so csr's own ErrSelfLoop/
// ErrDuplicateEdge are the only place that check lives twice.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tifaniobri/comdetect/core"
)

// ErrMalformedInput wraps every input-syntax problem: a line with the
// wrong number of fields, a non-integer or negative field, a self-loop,
// or a duplicate edge.
var ErrMalformedInput = errors.New("ingest: malformed input")

// ParseEdgeList reads an edge-list file from r and returns the parsed
// endpoints as two parallel slices (u[i], v[i]) in the order they
// appeared, skipping blank lines and '#' comments.
func ParseEdgeList(r io.Reader) (u, v []int, err error) {
	g := core.NewGraph()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, b, err := parseLine(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNo, err)
		}
		if err := g.AddEdge(a, b); err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	edges := g.Edges()
	u = make([]int, len(edges))
	v = make([]int, len(edges))
	for i, e := range edges {
		u[i], v[i] = e[0], e[1]
	}

	return u, v, nil
}

func parseLine(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil || a < 0 {
		return 0, 0, fmt.Errorf("invalid node id %q", fields[0])
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil || b < 0 {
		return 0, 0, fmt.Errorf("invalid node id %q", fields[1])
	}

	return a, b, nil
}
