// Package labelset implements the per-node Pareto label set and its
// batched update protocol: the ordered sequence of mutually
// non-dominated labels a vertex has accumulated during a bi-objective
// shortest-path search, plus the linear-scan fold that applies a
// sorted run of edge-relaxation candidates to it in one pass.
//
// Two representations satisfy the same Set contract: Sequence (a
// sorted slice, favoring cache-friendly scans and find-minima
// throughput) and Tree (an ordered binary tree keyed by W1, which
// amortises updates at the cost of worse constants). Pick one at
// construction time; callers such as ApplyBatch reach it through the
// Set interface, so each Add or PendingDeletions call is dispatched
// dynamically.
package labelset

import (
	"sort"

	"github.com/katalvlaran/paretosp/weight"
)

// Set is the per-node Pareto label set contract: a collection of
// mutually non-dominated labels, kept sorted ascending by W1
// (equivalently descending by W2).
type Set[W weight.Integer] interface {
	// Add inserts newLabel if it is not dominated by any existing
	// member, deleting the contiguous range of members it dominates.
	// Reports whether it was inserted.
	Add(newLabel weight.Label[W]) bool

	// All returns the current labels in ascending W1 order, excluding
	// the permanent boundary sentinels.
	All() []weight.Label[W]

	// Len reports the number of real (non-sentinel) labels.
	Len() int

	// PendingDeletions reports, without mutating the set, which
	// existing labels a subsequent Add(newLabel) would remove, and
	// whether newLabel would be rejected as dominated. Used by
	// ApplyBatch to emit DELETE updates before applying the insertion.
	PendingDeletions(newLabel weight.Label[W]) (deleted []weight.Label[W], dominated bool)
}

// Representation selects a Set's internal storage.
type Representation int

const (
	// SequenceRepresentation backs the Set with a sorted slice.
	SequenceRepresentation Representation = iota
	// TreeRepresentation backs the Set with an ordered binary tree.
	TreeRepresentation
)

// New constructs an empty Set, padded with the permanent boundary
// sentinels, using the requested Representation.
func New[W weight.Integer](rep Representation) Set[W] {
	switch rep {
	case TreeRepresentation:
		return newTree[W]()
	default:
		return newSequence[W]()
	}
}

// --- Sequence representation -------------------------------------------------

// sequence is the sorted-slice representation of a node's label set,
// padded with sentinels at index 0 and len-1.
type sequence[W weight.Integer] struct {
	labels []weight.Label[W]
}

func newSequence[W weight.Integer]() *sequence[W] {
	return &sequence[W]{
		labels: []weight.Label[W]{weight.SentinelLow[W](), weight.SentinelHigh[W]()},
	}
}

// xPredecessorIndex returns the index of the last label with W1
// strictly less than newLabel.W1; the low sentinel guarantees one
// always exists.
func (s *sequence[W]) xPredecessorIndex(newLabel weight.Label[W]) int {
	idx := sort.Search(len(s.labels), func(i int) bool { return s.labels[i].W1 >= newLabel.W1 })

	return idx - 1
}

func (s *sequence[W]) Add(newLabel weight.Label[W]) bool {
	predIdx := s.xPredecessorIndex(newLabel)
	if s.labels[predIdx].W2 <= newLabel.W2 {
		return false // dominated by predecessor (step 2)
	}

	eqIdx := predIdx + 1 // first label with W1 >= newLabel.W1 (step 3)
	if s.labels[eqIdx].W1 == newLabel.W1 && s.labels[eqIdx].W2 <= newLabel.W2 {
		return false // dominated by the same-W1 incumbent
	}

	// first_nondominated: first label at/after eq whose W2 < newLabel.W2 (step 4).
	fndIdx := eqIdx
	for fndIdx < len(s.labels) && s.labels[fndIdx].W2 >= newLabel.W2 {
		fndIdx++
	}

	if eqIdx == fndIdx {
		// Empty delete range: just insert before first_nondominated (step 5).
		s.labels = append(s.labels, weight.Label[W]{})
		copy(s.labels[fndIdx+1:], s.labels[fndIdx:])
		s.labels[fndIdx] = newLabel
	} else {
		// Overwrite eq, drop everything strictly between eq and
		// first_nondominated (step 6).
		s.labels[eqIdx] = newLabel
		s.labels = append(s.labels[:eqIdx+1], s.labels[fndIdx:]...)
	}

	return true
}

func (s *sequence[W]) All() []weight.Label[W] {
	if len(s.labels) <= 2 {
		return nil
	}

	out := make([]weight.Label[W], len(s.labels)-2)
	copy(out, s.labels[1:len(s.labels)-1])

	return out
}

func (s *sequence[W]) Len() int {
	return len(s.labels) - 2
}

// PendingDeletions mirrors Add's own computation so the two never
// disagree; see the Set interface doc.
func (s *sequence[W]) PendingDeletions(newLabel weight.Label[W]) (deleted []weight.Label[W], dominated bool) {
	predIdx := s.xPredecessorIndex(newLabel)
	if s.labels[predIdx].W2 <= newLabel.W2 {
		return nil, true
	}
	eqIdx := predIdx + 1
	if s.labels[eqIdx].W1 == newLabel.W1 && s.labels[eqIdx].W2 <= newLabel.W2 {
		return nil, true
	}
	fndIdx := eqIdx
	for fndIdx < len(s.labels) && s.labels[fndIdx].W2 >= newLabel.W2 {
		fndIdx++
	}
	if eqIdx == fndIdx {
		return nil, false
	}

	out := make([]weight.Label[W], fndIdx-eqIdx)
	copy(out, s.labels[eqIdx:fndIdx])

	return out, false
}
