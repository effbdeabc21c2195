package weight_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosp/weight"
)

func TestDominates(t *testing.T) {
	a := weight.Weight[int64]{W1: 1, W2: 1}
	b := weight.Weight[int64]{W1: 1, W2: 2}
	c := weight.Weight[int64]{W1: 2, W2: 2}

	require.True(t, weight.Dominates(a, b), "(1,1) should dominate (1,2)")
	require.False(t, weight.Dominates(b, a), "(1,2) must not dominate (1,1)")
	require.True(t, weight.Dominates(a, c))
	require.False(t, weight.Dominates(a, a), "a label never dominates itself")
}

func TestSentinels(t *testing.T) {
	low := weight.SentinelLow[int64]()
	high := weight.SentinelHigh[int64]()

	require.Equal(t, int64(math.MinInt64), int64(low.W1))
	require.Equal(t, int64(math.MaxInt64), int64(low.W2))
	require.Equal(t, int64(math.MaxInt64), int64(high.W1))
	require.Equal(t, int64(math.MinInt64), int64(high.W2))
	require.True(t, weight.Less(low, high))
}

func TestAddOverflow(t *testing.T) {
	max32 := weight.MaxW[int32]()
	_, err := weight.Add(weight.Weight[int32]{W1: max32, W2: 0}, weight.Weight[int32]{W1: 1, W2: 0})
	require.True(t, errors.Is(err, weight.ErrOverflow))

	sum, err := weight.Add(weight.Weight[int32]{W1: 1, W2: 2}, weight.Weight[int32]{W1: 3, W2: 4})
	require.NoError(t, err)
	require.Equal(t, weight.Weight[int32]{W1: 4, W2: 6}, sum)
}

func TestLessNodeLabel(t *testing.T) {
	a := weight.NodeLabel[int64]{Node: 2, Label: weight.Weight[int64]{W1: 1, W2: 1}}
	b := weight.NodeLabel[int64]{Node: 1, Label: weight.Weight[int64]{W1: 1, W2: 1}}

	require.True(t, weight.LessNodeLabel(b, a), "ties on (w1,w2) break by node id")
}
