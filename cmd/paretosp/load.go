package main

import (
	"bufio"
	"os"

	"github.com/katalvlaran/paretosp/csrgraph"
	"github.com/katalvlaran/paretosp/graphio"
	"github.com/katalvlaran/paretosp/xerrors"
)

// loadGraph sniffs the first byte of path to pick
// between the text road-network format (starts with 'p') and the
// compact binary blob, the way a harness accepting either instance
// family on one flag must.
func loadGraph(path string) (*csrgraph.Graph[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "opening graph file %q", path)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	first, err := br.Peek(1)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "peeking graph file %q", path)
	}

	if first[0] == 'p' {
		return graphio.ReadRoadGraph(br)
	}

	return graphio.ReadBinaryGraph(br)
}

func loadProblems(path string) ([]graphio.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "opening problem file %q", path)
	}
	defer f.Close()

	return graphio.ReadProblems(f)
}
