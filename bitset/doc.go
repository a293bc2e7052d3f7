// Package bitset provides Set, a fixed-capacity bit vector over the vertex
// universe [0, n) used by every other reconf package.
//
// A Set is a thin layer over github.com/bits-and-blooms/bitset that pins the
// universe size at construction and exposes the packed words for the
// word-at-a-time loops the search relies on (trailing-zero scanning,
// intersection tests).
//
// Invariants
//
//   - Bits at index >= Len() are always zero, so Equal and Count are
//     word-wise comparisons and popcounts.
//   - Sets have value semantics: Clone and CopyFrom produce independent
//     storage; no caller may rely on aliasing.
//
// Indices outside [0, Len()) are a caller precondition violation and are
// not checked.
//
// Complexity (W = ⌈n/64⌉)
//
//   - Test, Set, Clear: O(1)
//   - Count, Equal, Clone, CopyFrom, Intersects, DifferenceCount: O(W)
//   - ForEach, Members: O(W + |set|)
package bitset
