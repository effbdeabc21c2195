package graphio

import (
	"math/rand"

	"github.com/katalvlaran/paretosp/csrgraph"
)

// WeightFunc draws one random bi-objective edge weight.
type WeightFunc func(rng *rand.Rand) (w1, w2 int64)

// defaultMaxCost is the inclusive upper bound of the original
// generator's U[1, 10] per-coordinate weight distribution.
const defaultMaxCost = 10

// UniformWeight draws both coordinates independently and uniformly
// from [1, defaultMaxCost], the original generator's default.
func UniformWeight(rng *rand.Rand) (w1, w2 int64) {
	return int64(1 + rng.Intn(defaultMaxCost)), int64(1 + rng.Intn(defaultMaxCost))
}

// GridGeneratorOption configures a GridGenerator.
type GridGeneratorOption func(*GridGenerator)

// WithWeightFunc overrides the per-edge weight distribution.
func WithWeightFunc(f WeightFunc) GridGeneratorOption {
	return func(g *GridGenerator) { g.weightFunc = f }
}

// WithRand overrides the random source, for reproducible tests.
func WithRand(rng *rand.Rand) GridGeneratorOption {
	return func(g *GridGenerator) { g.rng = rng }
}

// GridGenerator builds synthetic bi-objective grid graphs shaped like
// [Raith, Ehrgott 2009]: a dedicated START node feeding the left
// column, a dedicated END node fed by the right column, and a
// 4-neighbor grid connecting adjacent cells rightward and downward.
type GridGenerator struct {
	weightFunc WeightFunc
	rng        *rand.Rand
}

// NewGridGenerator constructs a GridGenerator with the original's
// default uniform weight distribution and a random source seeded
// with the fixed value 1, both overridable via options.
func NewGridGenerator(opts ...GridGeneratorOption) *GridGenerator {
	g := &GridGenerator{
		weightFunc: UniformWeight,
		rng:        rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate builds a height x width grid graph. Node 0 is START, node
// 1 is END; grid cell (i, j) (0 <= i < width, 0 <= j < height) is node
// 2 + i*height + j.
func (g *GridGenerator) Generate(height, width int) (*csrgraph.Graph[int64], error) {
	const start, end = 0, 1
	nodeID := func(i, j int) int { return 2 + i*height + j }
	nodeCount := 2 + width*height

	var edges []csrgraph.RawEdge[int64]
	addEdge := func(from, to int) {
		w1, w2 := g.weightFunc(g.rng)
		edges = append(edges, csrgraph.RawEdge[int64]{From: from, To: to, W1: w1, W2: w2})
	}

	for j := 0; j < height; j++ {
		addEdge(start, nodeID(0, j))
		addEdge(nodeID(width-1, j), end)
	}

	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			current := nodeID(i, j)
			if i+1 < width {
				addEdge(current, nodeID(i+1, j))
			}
			if j+1 < height {
				addEdge(current, nodeID(i, j+1))
			}
		}
	}

	return csrgraph.New[int64](nodeCount, edges)
}
