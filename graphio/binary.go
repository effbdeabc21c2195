// Package graphio reads and writes the external graph formats the
// core never sees directly: a compact binary blob, a human-readable
// road-network text format, paired start/end problem files, and a
// synthetic grid generator, plus the harness's optional YAML run
// manifest and HTML statistics chart.
package graphio

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/paretosp/csrgraph"
	"github.com/katalvlaran/paretosp/xerrors"
)

// ReadBinaryGraph parses the compact binary graph blob: an 8-byte
// node count, an 8-byte edge count, an (N+1)-entry array of 8-byte
// first-edge offsets, then one 12-byte record per edge (4-byte target,
// 4-byte W1, 4-byte W2), all little-endian.
func ReadBinaryGraph(r io.Reader) (*csrgraph.Graph[int64], error) {
	var nodeCount, edgeCount uint64
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: reading node count")
	}
	if err := binary.Read(r, binary.LittleEndian, &edgeCount); err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: reading edge count")
	}

	offsets := make([]uint64, nodeCount+1)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: reading offset array")
	}

	edges := make([]csrgraph.RawEdge[int64], 0, edgeCount)
	for u := uint64(0); u < nodeCount; u++ {
		for i := offsets[u]; i < offsets[u+1]; i++ {
			var target, w1, w2 uint32
			if err := binary.Read(r, binary.LittleEndian, &target); err != nil {
				return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: reading edge %d target", i)
			}
			if err := binary.Read(r, binary.LittleEndian, &w1); err != nil {
				return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: reading edge %d w1", i)
			}
			if err := binary.Read(r, binary.LittleEndian, &w2); err != nil {
				return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: reading edge %d w2", i)
			}
			edges = append(edges, csrgraph.RawEdge[int64]{
				From: int(u), To: int(target), W1: int64(w1), W2: int64(w2),
			})
		}
	}

	return csrgraph.New[int64](int(nodeCount), edges)
}

// WriteBinaryGraph serializes g in the format ReadBinaryGraph
// understands, preserving the node-grouped edge order csrgraph.Graph
// already stores edges in.
func WriteBinaryGraph(w io.Writer, g *csrgraph.Graph[int64]) error {
	nodeCount := uint64(g.NodeCount())
	edgeCount := uint64(g.EdgeCount())
	if err := binary.Write(w, binary.LittleEndian, nodeCount); err != nil {
		return xerrors.Wrap(xerrors.Precondition, err, "graphio: writing node count")
	}
	if err := binary.Write(w, binary.LittleEndian, edgeCount); err != nil {
		return xerrors.Wrap(xerrors.Precondition, err, "graphio: writing edge count")
	}

	offsets := make([]uint64, g.NodeCount()+1)
	for u := 0; u < g.NodeCount(); u++ {
		offsets[u] = uint64(g.EdgeBegin(u))
	}
	offsets[g.NodeCount()] = uint64(g.EdgeCount())
	if err := binary.Write(w, binary.LittleEndian, offsets); err != nil {
		return xerrors.Wrap(xerrors.Precondition, err, "graphio: writing offset array")
	}

	for i := 0; i < g.EdgeCount(); i++ {
		target, wt := g.Edge(i)
		rec := [3]uint32{uint32(target), uint32(wt.W1), uint32(wt.W2)}
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return xerrors.Wrap(xerrors.Precondition, err, "graphio: writing edge %d", i)
		}
	}

	return nil
}
