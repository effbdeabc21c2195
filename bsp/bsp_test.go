package bsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosp/bsp"
	"github.com/katalvlaran/paretosp/csrgraph"
	"github.com/katalvlaran/paretosp/labelset"
	"github.com/katalvlaran/paretosp/pqueue"
	"github.com/katalvlaran/paretosp/weight"
)

func lab(w1, w2 int64) weight.Label[int64] {
	return weight.Weight[int64]{W1: w1, W2: w2}
}

func buildGraph(t *testing.T, nodeCount int, edges []csrgraph.RawEdge[int64]) *csrgraph.Graph[int64] {
	t.Helper()
	g, err := csrgraph.New[int64](nodeCount, edges)
	require.NoError(t, err)

	return g
}

func engines(t *testing.T, g *csrgraph.Graph[int64]) []*bsp.Engine[int64] {
	t.Helper()
	var out []*bsp.Engine[int64]
	for _, lrep := range []labelset.Representation{labelset.SequenceRepresentation, labelset.TreeRepresentation} {
		for _, qrep := range []pqueue.Representation{pqueue.SequenceRepresentation, pqueue.TreeRepresentation} {
			out = append(out, bsp.New[int64](g, bsp.WithLabelRepresentation(lrep), bsp.WithQueueRepresentation(qrep)))
		}
	}

	return out
}

func TestSingleEdge(t *testing.T) {
	g := buildGraph(t, 2, []csrgraph.RawEdge[int64]{{From: 0, To: 1, W1: 3, W2: 4}})
	for _, eng := range engines(t, g) {
		res, err := eng.Run(context.Background(), 0)
		require.NoError(t, err)
		require.ElementsMatch(t, []weight.Label[int64]{lab(0, 0)}, res.LabelSet(0))
		require.ElementsMatch(t, []weight.Label[int64]{lab(3, 4)}, res.LabelSet(1))
	}
}

func TestChain(t *testing.T) {
	g := buildGraph(t, 4, []csrgraph.RawEdge[int64]{
		{From: 0, To: 1, W1: 1, W2: 1},
		{From: 1, To: 2, W1: 1, W2: 1},
		{From: 2, To: 3, W1: 1, W2: 1},
	})
	for _, eng := range engines(t, g) {
		res, err := eng.Run(context.Background(), 0)
		require.NoError(t, err)
		require.ElementsMatch(t, []weight.Label[int64]{lab(3, 3)}, res.LabelSet(3))
	}
}

func TestDiamondTwoNonDominatedPaths(t *testing.T) {
	g := buildGraph(t, 4, []csrgraph.RawEdge[int64]{
		{From: 0, To: 1, W1: 1, W2: 4},
		{From: 0, To: 2, W1: 4, W2: 1},
		{From: 1, To: 3, W1: 1, W2: 1},
		{From: 2, To: 3, W1: 1, W2: 1},
	})
	for _, eng := range engines(t, g) {
		res, err := eng.Run(context.Background(), 0)
		require.NoError(t, err)
		require.ElementsMatch(t, []weight.Label[int64]{lab(2, 5), lab(5, 2)}, res.LabelSet(3))
	}
}

func TestParallelEdgesIntoSameNode(t *testing.T) {
	g := buildGraph(t, 2, []csrgraph.RawEdge[int64]{
		{From: 0, To: 1, W1: 2, W2: 5},
		{From: 0, To: 1, W1: 5, W2: 2},
		{From: 0, To: 1, W1: 3, W2: 3},
	})
	for _, eng := range engines(t, g) {
		res, err := eng.Run(context.Background(), 0)
		require.NoError(t, err)
		require.ElementsMatch(t, []weight.Label[int64]{lab(2, 5), lab(3, 3), lab(5, 2)}, res.LabelSet(1))
	}
}

func TestSmallGrid(t *testing.T) {
	// 2x2 grid, node ids row-major: 0 1 / 2 3. Moving right costs
	// (1,0), moving down costs (0,1).
	g := buildGraph(t, 4, []csrgraph.RawEdge[int64]{
		{From: 0, To: 1, W1: 1, W2: 0},
		{From: 0, To: 2, W1: 0, W2: 1},
		{From: 1, To: 3, W1: 0, W2: 1},
		{From: 2, To: 3, W1: 1, W2: 0},
	})
	for _, eng := range engines(t, g) {
		res, err := eng.Run(context.Background(), 0)
		require.NoError(t, err)
		require.ElementsMatch(t, []weight.Label[int64]{lab(1, 1)}, res.LabelSet(3))
	}
}

func TestRunParallelAgreesWithRun(t *testing.T) {
	g := buildGraph(t, 5, []csrgraph.RawEdge[int64]{
		{From: 0, To: 1, W1: 1, W2: 4},
		{From: 0, To: 2, W1: 4, W2: 1},
		{From: 1, To: 3, W1: 1, W2: 1},
		{From: 2, To: 3, W1: 1, W2: 1},
		{From: 3, To: 4, W1: 2, W2: 2},
	})
	seq := bsp.New[int64](g)
	par := bsp.New[int64](g, bsp.WithWorkers(3))

	seqRes, err := seq.Run(context.Background(), 0)
	require.NoError(t, err)
	parRes, err := par.RunParallel(context.Background(), 0)
	require.NoError(t, err)

	for node := 0; node < 5; node++ {
		require.ElementsMatch(t, seqRes.LabelSet(node), parRes.LabelSet(node), "node %d", node)
	}
}

func TestRejectsOutOfRangeSource(t *testing.T) {
	g := buildGraph(t, 2, nil)
	eng := bsp.New[int64](g)
	_, err := eng.Run(context.Background(), 5)
	require.Error(t, err)
}
