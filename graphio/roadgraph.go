package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/paretosp/csrgraph"
	"github.com/katalvlaran/paretosp/xerrors"
)

// ReadRoadGraph parses the "p sp N E" road-network text format: a
// header line of four whitespace-separated fields (two keywords, the
// node count, the edge count), two unused lines, then one "u v w1 w2"
// line per edge.
func ReadRoadGraph(r io.Reader) (*csrgraph.Graph[int64], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, xerrors.New(xerrors.Precondition, "graphio: road graph missing header line")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 4 || header[0] != "p" {
		return nil, xerrors.New(xerrors.Precondition, "graphio: malformed road graph header %q", scanner.Text())
	}
	nodeCount, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: parsing node count")
	}
	edgeCount, err := strconv.Atoi(header[3])
	if err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: parsing edge count")
	}

	// Two unused lines the original format reserves but never fills in.
	for i := 0; i < 2 && scanner.Scan(); i++ {
	}

	edges := make([]csrgraph.RawEdge[int64], 0, edgeCount)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, xerrors.New(xerrors.Precondition, "graphio: malformed edge line %q", line)
		}
		vals := make([]int64, 4)
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: parsing edge field %q", f)
			}
			vals[i] = v
		}
		edges = append(edges, csrgraph.RawEdge[int64]{From: int(vals[0]), To: int(vals[1]), W1: vals[2], W2: vals[3]})
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: scanning road graph")
	}

	return csrgraph.New[int64](nodeCount, edges)
}

// Problem is one source/target pair read from a problem file.
type Problem struct {
	Start, End int
}

// ReadProblems parses a problem file: pairs of lines (start id, end
// id) separated by a blank line.
func ReadProblems(r io.Reader) ([]Problem, error) {
	scanner := bufio.NewScanner(r)

	var problems []Problem
	for {
		startLine, ok := nextNonEmptyLine(scanner)
		if !ok {
			break
		}
		if !scanner.Scan() {
			return nil, xerrors.New(xerrors.Precondition, "graphio: problem file ended mid-pair after start %q", startLine)
		}
		endLine := strings.TrimSpace(scanner.Text())

		start, err := strconv.Atoi(strings.TrimSpace(startLine))
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: parsing problem start %q", startLine)
		}
		end, err := strconv.Atoi(endLine)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: parsing problem end %q", endLine)
		}
		problems = append(problems, Problem{Start: start, End: end})
		// The blank separator line, if present, is skipped by the next
		// nextNonEmptyLine call.
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: scanning problem file")
	}

	return problems, nil
}

func nextNonEmptyLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}

	return "", false
}

// String renders a Problem as "start->end" for diagnostics.
func (p Problem) String() string {
	return fmt.Sprintf("%d->%d", p.Start, p.End)
}
