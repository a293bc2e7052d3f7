// Package bfs provides an exhaustive breadth-first search over the
// token-jumping move graph of a core.Graph: the graph whose nodes are the
// independent sets of a fixed size and whose edges are single token jumps.
//
// What
//
//   - Explore every configuration reachable from a start set, in
//     non-decreasing number of jumps.
//   - Returns a BFSResult containing:
//   - Order:  configuration keys in visit sequence
//   - Depth:  key → jumps from the start
//   - Parent: key → predecessor key in the BFS tree
//   - States: key → configuration
//   - ShortestPath stops as soon as a goal configuration is dequeued.
//   - Successors enumerates all legal jumps out of one configuration.
//
// Why
//
//	BFS is the exact reference for the IDA* solver: it yields true shortest
//	distances, so it checks optimality, the admissibility of the heuristic
//	and the soundness of NO answers. Its state space grows as C(n, k), so it
//	is only feasible for small instances; WithMaxStates bounds the work.
//
// Determinism
//
//	Successors are generated by source token ascending, then destination
//	ascending, so Order is fully reproducible.
//
// Symmetry
//
//	Every jump x→y has the inverse jump y→x, so the move graph is
//	undirected: distances to a target T can be read from BFS(g, T).
//
// Complexity (k tokens, N reachable configurations)
//
//   - Time:   O(N · k · n · W)
//   - Memory: O(N · W)
//
// Options
//
//   - WithContext(ctx)     cancellation, polled once per dequeue.
//   - WithMaxDepth(d)      do not expand beyond depth d (d > 0; 0 = no limit).
//   - WithMaxStates(n)     fail with ErrStateLimit once more than n states are seen.
//   - WithOnVisit(fn)      hook per dequeued configuration; an error aborts.
//   - WithGoal(t)          stop when t is dequeued.
//
// Errors
//
//   - ErrGraphNil            graph pointer is nil.
//   - ErrUniverseMismatch    a set's universe differs from the graph order.
//   - ErrNotIndependent      the start set contains an edge.
//   - ErrOptionViolation     negative MaxDepth or MaxStates.
//   - ErrStateLimit          more than MaxStates configurations discovered.
//   - context errors and wrapped OnVisit errors.
package bfs
