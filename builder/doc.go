// Package builder constructs deterministic core.Graph fixtures and random
// token-jumping instances for tests, benchmarks and the `reconf gen` command.
//
// Graphs are assembled by BuildGraph from one or more Constructors. Each
// constructor appends a fresh block of vertices, so composing several yields
// their disjoint union:
//
//	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(4))
//	// vertices 0..2 form a path, 3..6 a 4-cycle, no edges between blocks
//
// Topologies:
//
//	Path(n), Cycle(n), Complete(n), Star(n), Wheel(n), Grid(r, c),
//	CompleteBipartite(a, b), Isolated(n), RandomSparse(n, p)
//
// Instances:
//
//	RandomIndependentSet(g, k, opts...) samples one independent k-set.
//	RandomInstance(g, k, opts...)       samples a start/target pair.
//
// Determinism: equal inputs, options and seed produce identical graphs and
// instances. Stochastic constructors require WithSeed or WithRand.
//
// Errors: sentinels in errors.go, wrapped with the method name via %w.
package builder
