package csrgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosp/csrgraph"
)

func TestNewGroupsEdgesByNodeRegardlessOfInputOrder(t *testing.T) {
	edges := []csrgraph.RawEdge[int64]{
		{From: 2, To: 0, W1: 1, W2: 1},
		{From: 0, To: 1, W1: 2, W2: 3},
		{From: 0, To: 2, W1: 1, W2: 1},
	}
	g, err := csrgraph.New(3, edges)
	require.NoError(t, err)

	require.Equal(t, 2, g.EdgeEnd(0)-g.EdgeBegin(0))
	targets := map[int]bool{}
	for i := g.EdgeBegin(0); i < g.EdgeEnd(0); i++ {
		target, _ := g.Edge(i)
		targets[target] = true
	}
	require.True(t, targets[1])
	require.True(t, targets[2])
}

func TestNewRejectsOutOfRangeEndpoint(t *testing.T) {
	_, err := csrgraph.New(2, []csrgraph.RawEdge[int64]{{From: 0, To: 5, W1: 1, W2: 1}})
	require.Error(t, err)
}

func TestNewRejectsNegativeWeight(t *testing.T) {
	_, err := csrgraph.New(2, []csrgraph.RawEdge[int64]{{From: 0, To: 1, W1: -1, W2: 1}})
	require.Error(t, err)
}
