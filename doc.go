// Package paretosp is a bi-objective (Pareto) shortest-path search
// library and command-line harness.
//
// Given a graph whose edges carry two independent, non-negative
// integer costs, it computes every Pareto-optimal path from a source
// node: the set of paths where no path is cheaper on both dimensions
// than another. This is strictly more than a single shortest-path
// tree — a node may end a search with several mutually non-dominated
// labels, each the cheapest tradeoff along some weighting of the two
// objectives.
//
// Everything is organized under a handful of subpackages:
//
//	weight/      — two-dimensional cost vectors and the dominance relation
//	labelset/    — per-node Pareto-optimal label storage
//	pqueue/      — the global priority structure driving the search frontier
//	csrgraph/    — immutable compressed sparse row graph storage
//	bsp/         — the label-setting search engine (sequential and parallel)
//	oracle/      — a scalarized reference search used to cross-check bsp
//	graphio/     — binary/text graph formats, problem files, a grid generator
//	workstealing/ — the work-stealing pool bsp.Engine.RunParallel runs on
//	cmd/paretosp — the command-line harness
//
// See DESIGN.md for how each piece is grounded, and SPEC_FULL.md for
// the full functional specification this module implements.
package paretosp
