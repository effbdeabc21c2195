package graphio

import (
	"github.com/katalvlaran/paretosp/csrgraph"
	"github.com/katalvlaran/paretosp/weight"
)

// RemoveSelfLoops drops every edge whose source equals its target
// from a raw edge list, before it is handed to csrgraph.New.
// ReadRoadGraph and ReadBinaryGraph do not call it.
func RemoveSelfLoops[W weight.Integer](edges []csrgraph.RawEdge[W]) []csrgraph.RawEdge[W] {
	out := make([]csrgraph.RawEdge[W], 0, len(edges))
	for _, e := range edges {
		if e.From != e.To {
			out = append(out, e)
		}
	}

	return out
}
