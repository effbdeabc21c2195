package labelset

import "github.com/katalvlaran/paretosp/weight"

// BatchStats tallies what ApplyBatch did with one candidate run, for
// callers that want to surface per-iteration search statistics.
type BatchStats struct {
	Dominated         int // candidates rejected as dominated
	NonDominated      int // candidates accepted and inserted
	DominationShortcut int // candidates rejected via the rolling-minimum shortcut, without touching the set
}

// ApplyBatch folds a contiguous run of candidates all targeting node
// v, already sorted ascending by (W1, W2), into set, appending the
// resulting INSERT/DELETE updates to out.
//
// It maintains a rolling W2-minimum across the batch: a candidate
// whose W2 is not strictly better than every predecessor seen so far
// in this same batch is dominated by one of them and is skipped
// without even touching the label set, so duplicates from multiple
// edges relaxing into the same target cost no label-set work. Each
// candidate that passes this filter is located in set by its own
// search; no search position is carried from one candidate to the
// next.
func ApplyBatch[W weight.Integer](set Set[W], v int, candidates []weight.Label[W], out *[]weight.Update[W]) BatchStats {
	var stats BatchStats
	min := weight.MaxW[W]()

	for _, c := range candidates {
		if c.W2 >= min {
			stats.Dominated++
			stats.DominationShortcut++
			continue // dominated by an earlier candidate in this batch
		}
		min = c.W2

		deleted, dominated := set.PendingDeletions(c)
		if dominated {
			stats.Dominated++
			continue
		}
		stats.NonDominated++

		*out = append(*out, weight.Update[W]{Kind: weight.Insert, Payload: weight.NodeLabel[W]{Node: v, Label: c}})
		for _, d := range deleted {
			*out = append(*out, weight.Update[W]{Kind: weight.Delete, Payload: weight.NodeLabel[W]{Node: v, Label: d}})
		}

		set.Add(c)
	}

	return stats
}
