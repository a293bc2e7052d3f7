// Package idastar solves Independent Set Reconfiguration under the Token
// Jumping rule (ISR-TJ) with iterative-deepening A* over bitset-encoded
// token configurations.
//
// What
//
//   - Given a core.Graph and two equal-size independent sets S and T, find a
//     shortest sequence of jumps turning S into T. A jump moves one token
//     from an occupied vertex x to an unoccupied vertex y such that the new
//     token set is still independent.
//   - Solve / SolveSets return a Result: Solvable plus, on success, the Path
//     of token sets from S to T (both inclusive) and search Stats.
//   - Format converts a Result into the 1-based wire Output (YES/NO + steps).
//   - CheckPath validates any claimed path against a graph and endpoints.
//
// How
//
//	The search state keeps the current tokens, a per-vertex count of
//	adjacent tokens (tokenDegree) and h = |tokens \ T|. All three are
//	updated incrementally in O(deg(x)+deg(y)) per move; they are recomputed
//	from scratch only once, at initialization. h is admissible because one
//	jump changes the target membership of at most one token.
//
//	Each bounded pass prunes frames with g+h > bound and records the
//	smallest pruned f as the next bound. A pass that prunes nothing and
//	misses the goal proves the instance unsolvable.
//
// Move ordering
//
//	Unoccupied destinations y are tried in four fixed classes, each in
//	ascending vertex order:
//	  1. y ∈ T, tokenDegree 1   (source is the unique adjacent token)
//	  2. y ∈ T, tokenDegree 0   (every token is a source; off-target first)
//	  3. y ∉ T, tokenDegree 1
//	  4. y ∉ T, tokenDegree 0
//	A destination with two or more adjacent tokens can never be reached in
//	one jump. Ordering does not affect optimality, only how early the first
//	solution at the final bound is found.
//
//	Undoing the parent's move is skipped. Longer cycles are not filtered:
//	g grows by one per frame and f is bounded, so every pass terminates.
//	The escalation loop does not always terminate: NO is proven only when a
//	pass exhausts the reachable configurations without a cut-off. If T is
//	unreachable but tokens can still circulate (three configurations forming
//	a cycle suffice), the bound grows without limit.
//
// Cancellation
//
//	The driver polls the Context supplied with WithContext every 1024
//	frames and unwinds with ctx.Err(). Callers that may meet unreachable
//	targets should always pass a deadline; internal/runner reports an
//	expired solve as indeterminate.
//
// Errors
//
//   - ErrGraphNil           graph pointer is nil.
//   - ErrVertexOutOfRange   a vertex id is outside [0, n).
//   - ErrDuplicateVertex    a vertex id repeats within S or T.
//   - ErrUniverseMismatch   a set's universe differs from the graph order.
//   - ErrSizeMismatch       |S| != |T|.
//   - ErrNotIndependent     S or T contains an edge.
//   - context errors        search cancelled through WithContext.
//
// An unsolvable instance is not an error: Solvable is false and err is nil.
package idastar
