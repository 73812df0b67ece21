package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// ErrInvalidArguments is returned by parseArgs for any malformed or
// out-of-range CLI argument.
var ErrInvalidArguments = errors.New("invalid arguments")

// cliArgs holds the parsed positional and optional command-line
// arguments: input_file, num_clusters, output_file, --sample-rate.
type cliArgs struct {
	inputFile   string
	numClusters int
	outputFile  string
	sampleRate  float64
}

// parseArgs parses argv (excluding the program name) into a cliArgs,
// validating num_clusters >= 1 and 0 < sample_rate <= 1.
func parseArgs(argv []string) (cliArgs, error) {
	fs := flag.NewFlagSet("comdetect", flag.ContinueOnError)
	sampleRate := fs.Float64("sample-rate", 1.0, "fraction of high-degree nodes sampled as BFS sources (0,1]")
	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	positional := fs.Args()
	if len(positional) != 3 {
		return cliArgs{}, fmt.Errorf("%w: expected 3 positional arguments, got %d", ErrInvalidArguments, len(positional))
	}

	numClusters, err := strconv.Atoi(positional[1])
	if err != nil || numClusters < 1 {
		return cliArgs{}, fmt.Errorf("%w: num_clusters must be an integer >= 1, got %q", ErrInvalidArguments, positional[1])
	}
	if *sampleRate <= 0 || *sampleRate > 1 {
		return cliArgs{}, fmt.Errorf("%w: sample-rate must be in (0,1], got %v", ErrInvalidArguments, *sampleRate)
	}

	return cliArgs{
		inputFile:   positional[0],
		numClusters: numClusters,
		outputFile:  positional[2],
		sampleRate:  *sampleRate,
	}, nil
}
