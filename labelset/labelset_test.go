package labelset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosp/labelset"
	"github.com/katalvlaran/paretosp/weight"
)

func reps() []labelset.Representation {
	return []labelset.Representation{labelset.SequenceRepresentation, labelset.TreeRepresentation}
}

func label(w1, w2 int64) weight.Label[int64] {
	return weight.Weight[int64]{W1: w1, W2: w2}
}

// assertInvariants checks that after any sequence of Add calls, the
// set stays sorted strictly ascending in W1, strictly descending in
// W2, and no two members dominate each other.
func assertInvariants(t *testing.T, labels []weight.Label[int64]) {
	t.Helper()
	for i := 1; i < len(labels); i++ {
		require.Less(t, labels[i-1].W1, labels[i].W1, "W1 must be strictly ascending")
		require.Greater(t, labels[i-1].W2, labels[i].W2, "W2 must be strictly descending")
	}
	for i := range labels {
		for j := range labels {
			if i == j {
				continue
			}
			require.False(t, weight.Dominates(labels[i], labels[j]), "no member may dominate another")
		}
	}
}

func TestAddAcceptsNonDominatedAndRejectsDominated(t *testing.T) {
	for _, rep := range reps() {
		s := labelset.New[int64](rep)
		require.True(t, s.Add(label(2, 3)))
		require.True(t, s.Add(label(3, 2)))
		require.False(t, s.Add(label(4, 4)), "dominated by (2,3) and (3,2)")
		require.False(t, s.Add(label(3, 2)), "exact duplicate is dominated by itself")
		assertInvariants(t, s.All())
		require.Equal(t, 2, s.Len())
	}
}

func TestAddReplacesDominatedRange(t *testing.T) {
	for _, rep := range reps() {
		s := labelset.New[int64](rep)
		require.True(t, s.Add(label(1, 10)))
		require.True(t, s.Add(label(3, 8)))
		require.True(t, s.Add(label(5, 6)))
		require.True(t, s.Add(label(7, 4)))
		assertInvariants(t, s.All())
		require.Equal(t, 4, s.Len())

		// (2,7) dominates (3,8) only: (1,10) has a smaller W1, and
		// (5,6) and (7,4) have a W2 below 7.
		require.True(t, s.Add(label(2, 7)))
		all := s.All()
		assertInvariants(t, all)
		for _, l := range all {
			require.NotEqual(t, int64(3), l.W1, "(3,8) must have been removed as dominated")
		}
	}
}

func TestAddTieOnW1ReplacesWhenStrictlyBetter(t *testing.T) {
	for _, rep := range reps() {
		s := labelset.New[int64](rep)
		require.True(t, s.Add(label(5, 5)))
		require.True(t, s.Add(label(5, 3)), "equal W1 with strictly smaller W2 replaces")
		require.Equal(t, 1, s.Len())
		require.False(t, s.Add(label(5, 4)), "equal W1 with larger W2 is dominated")
	}
}

// TestApplyBatchProducesInsertsAndDeletes exercises the rolling-minimum
// filter and the resulting INSERT/DELETE batch.
func TestApplyBatchProducesInsertsAndDeletes(t *testing.T) {
	for _, rep := range reps() {
		s := labelset.New[int64](rep)
		require.True(t, s.Add(label(1, 10)))
		require.True(t, s.Add(label(5, 6)))

		candidates := []weight.Label[int64]{
			label(2, 9), // non-dominated, should insert (doesn't dominate (1,10) or (5,6))
			label(3, 9), // dominated by (2,9) within the same batch (W2 not improving)
			label(4, 5), // non-dominated, dominates (5,6)
		}
		var updates []weight.Update[int64]
		batchStats := labelset.ApplyBatch(s, 7, candidates, &updates)
		require.Equal(t, 2, batchStats.NonDominated)
		require.Equal(t, 1, batchStats.Dominated)
		require.Equal(t, 1, batchStats.DominationShortcut)

		var inserts, deletes int
		for _, u := range updates {
			require.Equal(t, 7, u.Payload.Node)
			if u.Kind == weight.Insert {
				inserts++
			} else {
				deletes++
			}
		}
		require.Equal(t, 2, inserts)
		require.Equal(t, 1, deletes, "inserting (4,5) must delete dominated (5,6)")
		assertInvariants(t, s.All())
	}
}

// TestDiamondScenario exercises a two-way tie where each of two
// non-dominated paths reaches the same node with a different tradeoff,
// and a third, costlier path dominated by both of them is rejected.
func TestDiamondScenario(t *testing.T) {
	for _, rep := range reps() {
		s := labelset.New[int64](rep)
		require.True(t, s.Add(label(2, 3)))
		require.True(t, s.Add(label(3, 2)))
		require.False(t, s.Add(label(5, 5)), "(1,1)+(4,4) dominated path must be rejected")

		all := s.All()
		require.ElementsMatch(t, []weight.Label[int64]{label(2, 3), label(3, 2)}, all)
	}
}
