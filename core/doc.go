// Package core defines Graph, the simple undirected graph every reconf
// algorithm runs on.
//
// Vertices are the integers [0, n). Adjacency is stored as one bitset.Set
// per vertex (an adjacency row), so neighbor enumeration scans ⌈n/64⌉ words
// and extracts the lowest set bit per step, and "is any neighbor of v in S"
// is a word-wise intersection test.
//
// What
//
//   - NewGraph(n):           empty graph of order n.
//   - AddEdge(u, v):         idempotent, undirected; self-loops are ignored.
//   - Neighbors / ForEachNeighbor / NeighborIDs / Degree / HasEdge.
//   - IsIndependent(S):      no two members of S are adjacent.
//   - Edges / Clone.
//
// Concurrency
//
//	Graph has no internal locking. Build it on one goroutine, then share it
//	read-only; every query method is safe for concurrent readers.
//
// Errors
//
//	ErrVertexOutOfRange - an endpoint is outside [0, n).
package core
