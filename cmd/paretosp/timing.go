package main

import "sort"

// prunedAverage computes a trimmed mean over samples, dropping the
// lowest and highest trim fraction of the sorted values before
// averaging the remainder — the same outlier-resistant reporting the
// original timing harness used over repeated runs.
func prunedAverage(samples []float64, trim float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	drop := int(float64(len(sorted)) * trim)
	lo, hi := drop, len(sorted)-drop
	if lo >= hi {
		lo, hi = 0, len(sorted)
	}

	var sum float64
	for _, v := range sorted[lo:hi] {
		sum += v
	}

	return sum / float64(hi-lo)
}
