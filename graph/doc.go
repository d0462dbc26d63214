// Package graph defines the immutable Compressed-Sparse-Row graph that the
// rest of dimacspath searches over.
//
// # What
//
//   - Graph packs all out-neighbors of every vertex into two flat arrays
//     (ColIdx, Weights) indexed by a per-vertex offset table (RowPtr), plus a
//     parallel Coords table for vertex positions in DIMACS microdegrees.
//   - Vertex ids are 0-based internally; DIMACS' 1-based ids are translated
//     once, at the dimacsparser boundary.
//   - Graph is built once (by dimacsparser, or directly via NewFromCSR for tests)
//     and never mutated afterward — there is no AddEdge. At US-road scale
//     (tens of millions of vertices) a mutable map-based graph would not fit
//     in cache, let alone memory, during search.
//
// # Why CSR
//
//   - Neighbours(u) is a half-open index range into ColIdx/Weights: no
//     pointer chasing, no per-edge allocation, sequential memory access.
//   - Construction is O(n+m) time and space; query-time traversal touches
//     only the bytes a vertex's out-edges occupy.
//
// # Invariants
//
//   - len(RowPtr) == N()+1, RowPtr is non-decreasing, RowPtr[0] == 0,
//     RowPtr[N()] == M().
//   - 0 <= ColIdx[i] < N() for every i in [0, M()).
//   - Arcs sharing a source u occupy ColIdx[RowPtr[u]:RowPtr[u+1]] in the
//     order they were appended during construction.
package graph
