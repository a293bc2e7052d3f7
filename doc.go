// Package reconf decides Independent Set Reconfiguration under the token
// jumping rule and, when the answer is yes, returns a shortest sequence of
// jumps.
//
// A configuration is an independent set of k tokens on an undirected graph.
// One move lifts a single token and drops it on any free vertex, as long as
// the result is still independent. Given a start and a target of equal size,
// the solver answers whether the target is reachable and lists every
// intermediate configuration of a shortest route.
//
// What is inside:
//
//	bitset/   fixed-universe vertex sets backing every configuration
//	core/     simple undirected graph over vertices 0..n-1
//	idastar/  the IDA* solver, answer formatting and path checking
//	bfs/      exhaustive breadth-first search over configurations (oracle)
//	builder/  graph constructors and random instance sampling
//	dimacs/   .col graph, .dat instance and answer file formats
//	cmd/reconf  command line: solve, batch, gen, verify
//
// Quick example, a star with center 0:
//
//	    1   2
//	     \ /
//	      0
//	     / \
//	    3   4
//
//	start {1,2}, target {3,4}: 1 -> 3, then 2 -> 4. Two moves.
//
// The solver may not terminate on an unreachable target whose tokens can
// still move, so long-running callers pass a deadline through
// idastar.WithContext or use the runner timeout of cmd/reconf.
package reconf
