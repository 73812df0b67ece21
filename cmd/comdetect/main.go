// Command comdetect partitions the graph described by an edge-list file
// into communities via the Girvan–Newman algorithm and writes the
// resulting node-to-community labeling to a file.
//
// Usage:
//
//	comdetect [--sample-rate R] input_file num_clusters output_file
//
// Exit codes: 0 success, 1 malformed input, 2 I/O error, 3 invalid
// arguments.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/tifaniobri/comdetect/csr"
	"github.com/tifaniobri/comdetect/gn"
	"github.com/tifaniobri/comdetect/ingest"
	"github.com/tifaniobri/comdetect/internal/idmap"
)

const (
	exitOK = iota
	exitMalformedInput
	exitIOError
	exitInvalidArguments
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	logger := log.New(os.Stderr, "comdetect: ", 0)

	args, err := parseArgs(argv)
	if err != nil {
		logger.Println(err)
		return exitInvalidArguments
	}

	u, v, err := readInput(args.inputFile)
	if err != nil {
		logger.Println(err)
		return exitCodeFor(err)
	}

	g, idm, err := csr.Build(u, v)
	if err != nil {
		logger.Println(err)
		return exitCodeFor(err)
	}

	result, err := gn.Run(g,
		gn.WithTargetCommunities(args.numClusters),
		gn.WithSampleRate(args.sampleRate),
	)
	if err != nil {
		logger.Println(err)
		return exitCodeFor(err)
	}

	if err := writeOutput(args.outputFile, idm, result); err != nil {
		logger.Println(err)
		return exitCodeFor(err)
	}

	return exitOK
}

func readInput(path string) (u, v []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	return ingest.ParseEdgeList(f)
}

// writeOutput resolves result's internal-index communities back to
// external IDs and writes one "<external_id> <community_index>" line per
// node, ordered by ascending external ID, per spec §6.
func writeOutput(path string, idm *idmap.Map, result gn.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	type labeled struct {
		external  int
		community int
	}
	lines := make([]labeled, 0, idm.Len())
	for communityIndex, members := range result.Communities {
		for _, internal := range members {
			lines = append(lines, labeled{external: idm.ToExternal(internal), community: communityIndex})
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].external < lines[j].external })

	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%d %d\n", l.external, l.community); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
	}

	return w.Flush()
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, ingest.ErrMalformedInput), errors.Is(err, csr.ErrSelfLoop), errors.Is(err, csr.ErrDuplicateEdge):
		return exitMalformedInput
	case errors.Is(err, gn.ErrInvalidTarget), errors.Is(err, gn.ErrInvalidSampleRate), errors.Is(err, ErrInvalidArguments):
		return exitInvalidArguments
	default:
		return exitIOError
	}
}
