// Package pqueue implements the global priority structure shared by
// every in-flight label in a bi-objective shortest-path search: the
// multiset of NodeLabels ordered lexicographically by (W1, W2, Node),
// supporting a batched find-Pareto-minima scan and a batched
// insert/delete update.
//
// As with package labelset, two representations satisfy the same
// Queue contract: Sequence (a sorted slice padded with sentinels,
// updated by a single forward merge pass per batch) and Tree (an
// ordered binary tree, updated by point-wise insert/delete). Pick one
// at construction time.
package pqueue

import (
	"sort"

	"github.com/katalvlaran/paretosp/weight"
)

// Queue is the global priority structure contract.
type Queue[W weight.Integer] interface {
	// Init seeds the queue with the initial set of labels, which must
	// already be sorted ascending by (W1, W2, Node).
	Init(seed []weight.NodeLabel[W])

	// FindParetoMinima returns every NodeLabel on the current Pareto
	// front: a running W2 minimum is tracked while scanning in (W1,
	// W2, Node) order, and an element qualifies if it strictly
	// improves that minimum, or ties the minimum exactly on (W1, W2)
	// — the tie-reporting variant, which surfaces every node sharing
	// the locally optimal tradeoff rather than only the first.
	FindParetoMinima() []weight.NodeLabel[W]

	// ApplyUpdates folds a batch of INSERT/DELETE updates, in any
	// order, into the queue.
	ApplyUpdates(updates []weight.Update[W])

	// Size reports the number of real (non-sentinel) elements.
	Size() int

	// Empty reports whether the queue currently holds no elements.
	Empty() bool
}

// Representation selects a Queue's internal storage.
type Representation int

const (
	// SequenceRepresentation backs the Queue with a sorted slice.
	SequenceRepresentation Representation = iota
	// TreeRepresentation backs the Queue with an ordered binary tree.
	TreeRepresentation
)

// New constructs an empty Queue using the requested Representation.
func New[W weight.Integer](rep Representation) Queue[W] {
	switch rep {
	case TreeRepresentation:
		return newTree[W]()
	default:
		return newSequence[W]()
	}
}

// --- Sequence representation -------------------------------------------------

// sequence is the sorted-slice representation, padded with sentinels
// at index 0 and len-1 so every bounded walk below has a guaranteed
// stopping point.
type sequence[W weight.Integer] struct {
	labels []weight.NodeLabel[W]
}

func sentinelLowNL[W weight.Integer]() weight.NodeLabel[W] {
	return weight.NodeLabel[W]{Node: 0, Label: weight.SentinelLow[W]()}
}

func sentinelHighNL[W weight.Integer]() weight.NodeLabel[W] {
	return weight.NodeLabel[W]{Node: 0, Label: weight.SentinelHigh[W]()}
}

func newSequence[W weight.Integer]() *sequence[W] {
	return &sequence[W]{
		labels: []weight.NodeLabel[W]{sentinelLowNL[W](), sentinelHighNL[W]()},
	}
}

func sameNodeLabel[W weight.Integer](a, b weight.NodeLabel[W]) bool {
	return a.Node == b.Node && weight.Equal(a.Label, b.Label)
}

func (s *sequence[W]) Init(seed []weight.NodeLabel[W]) {
	if len(seed) == 0 {
		return
	}
	updates := make([]weight.Update[W], len(seed))
	for i, nl := range seed {
		updates[i] = weight.Update[W]{Kind: weight.Insert, Payload: nl}
	}
	s.ApplyUpdates(updates)
}

func (s *sequence[W]) FindParetoMinima() []weight.NodeLabel[W] {
	if len(s.labels) <= 2 {
		return nil
	}

	first := 1
	last := len(s.labels) - 1 // exclusive of the high sentinel
	min := s.labels[first]
	var minima []weight.NodeLabel[W]
	for i := first; i < last; i++ {
		l := s.labels[i]
		if l.Label.W2 < min.Label.W2 || (l.Label.W1 == min.Label.W1 && l.Label.W2 == min.Label.W2) {
			min = l
			minima = append(minima, l)
		}
	}

	return minima
}

// ApplyUpdates sorts the batch by the same (W1, W2, Node) order the
// queue maintains, then folds it in with a single forward merge pass:
// an INSERT is spliced in at the first position it is less than, a
// DELETE is matched by scanning forward to the element it names
// (guaranteed present) and dropping it.
func (s *sequence[W]) ApplyUpdates(updates []weight.Update[W]) {
	if len(updates) == 0 {
		return
	}

	sorted := make([]weight.Update[W], len(updates))
	copy(sorted, updates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return weight.LessNodeLabel(sorted[i].Payload, sorted[j].Payload)
	})

	out := make([]weight.NodeLabel[W], 0, len(s.labels)+len(sorted))
	li := 0
	for _, u := range sorted {
		switch u.Kind {
		case weight.Delete:
			for !sameNodeLabel(s.labels[li], u.Payload) {
				out = append(out, s.labels[li])
				li++
			}
			li++ // drop the matched element
		default: // Insert
			for weight.LessNodeLabel(s.labels[li], u.Payload) {
				out = append(out, s.labels[li])
				li++
			}
			out = append(out, u.Payload)
		}
	}
	out = append(out, s.labels[li:]...)
	s.labels = out
}

func (s *sequence[W]) Size() int {
	return len(s.labels) - 2
}

func (s *sequence[W]) Empty() bool {
	return s.Size() == 0
}
