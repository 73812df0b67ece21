package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempInput(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}

func TestRunTriangleSplitsIntoSingletons(t *testing.T) {
	input := writeTempInput(t, "1 2\n2 3\n1 3\n")
	output := filepath.Join(t.TempDir(), "output.txt")

	code := run([]string{input, "2", output})
	if code != exitOK {
		t.Fatalf("run() = %d, want exitOK", code)
	}

	lines := readLines(t, output)
	if len(lines) != 3 {
		t.Fatalf("output lines = %v, want 3 lines", lines)
	}
	communities := make(map[string]bool)
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("malformed output line %q", line)
		}
		communities[fields[1]] = true
	}
	if len(communities) != 3 {
		t.Fatalf("expected 3 distinct singleton communities, got %d", len(communities))
	}
}

func TestRunMalformedInputExitsOne(t *testing.T) {
	input := writeTempInput(t, "1 1\n")
	output := filepath.Join(t.TempDir(), "output.txt")

	code := run([]string{input, "2", output})
	if code != exitMalformedInput {
		t.Fatalf("run() = %d, want exitMalformedInput", code)
	}
}

func TestRunMissingFileExitsTwo(t *testing.T) {
	output := filepath.Join(t.TempDir(), "output.txt")

	code := run([]string{filepath.Join(t.TempDir(), "does-not-exist.txt"), "2", output})
	if code != exitIOError {
		t.Fatalf("run() = %d, want exitIOError", code)
	}
}

func TestRunInvalidClusterCountExitsThree(t *testing.T) {
	input := writeTempInput(t, "1 2\n")
	output := filepath.Join(t.TempDir(), "output.txt")

	code := run([]string{input, "0", output})
	if code != exitInvalidArguments {
		t.Fatalf("run() = %d, want exitInvalidArguments", code)
	}
}

func TestRunInvalidSampleRateExitsThree(t *testing.T) {
	input := writeTempInput(t, "1 2\n")
	output := filepath.Join(t.TempDir(), "output.txt")

	code := run([]string{"--sample-rate", "2.0", input, "2", output})
	if code != exitInvalidArguments {
		t.Fatalf("run() = %d, want exitInvalidArguments", code)
	}
}
