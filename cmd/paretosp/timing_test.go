package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrunedAverageDropsOutliers(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 100}
	got := prunedAverage(samples, 0.2)
	require.InDelta(t, 3.0, got, 0.001)
}

func TestPrunedAverageEmpty(t *testing.T) {
	require.Equal(t, 0.0, prunedAverage(nil, 0.25))
}

func TestPrunedAverageFallsBackWhenTrimTooAggressive(t *testing.T) {
	samples := []float64{5, 7}
	got := prunedAverage(samples, 0.6)
	require.InDelta(t, 6.0, got, 0.001)
}
