package bsp

import "fmt"

// Stats accumulates the running counters of one search: how many
// iterations the main loop took, how many labels were scheduled for
// relaxation as part of a current Pareto front, how many of the
// resulting candidates were accepted versus rejected as dominated, and
// how many rejections were caught by the rolling-minimum shortcut
// before ever touching a label set.
type Stats struct {
	Iterations              int
	MinimaCount             int
	IdenticalTargetNodeRuns int
	LabelDominated          int
	LabelNonDominated       int
	DominationShortcut      int
}

// String renders a short human-readable summary, in the spirit of a
// search harness's end-of-run report.
func (s Stats) String() string {
	total := s.LabelDominated + s.LabelNonDominated
	domPercent := 0.0
	if total > 0 {
		domPercent = 100 * float64(s.LabelDominated) / float64(total)
	}

	return fmt.Sprintf(
		"iterations=%d minima=%d target_node_runs=%d labels_created=%d dominated=%.1f%% (%d) nondominated=%d shortcut=%d",
		s.Iterations, s.MinimaCount, s.IdenticalTargetNodeRuns, total, domPercent, s.LabelDominated, s.LabelNonDominated, s.DominationShortcut,
	)
}

func (s *Stats) merge(o Stats) {
	s.MinimaCount += o.MinimaCount
	s.IdenticalTargetNodeRuns += o.IdenticalTargetNodeRuns
	s.LabelDominated += o.LabelDominated
	s.LabelNonDominated += o.LabelNonDominated
	s.DominationShortcut += o.DominationShortcut
}
