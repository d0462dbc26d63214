// Package dimacsgen generates synthetic DIMACS .gr/.co text for tests and
// benchmarks: line graphs, grids, and Erdős–Rényi-like random sparse graphs.
//
// It mirrors a general-purpose graph builder's functional determinism
// contract (fixed vertex/edge emission order, a seeded RNG for stochastic
// generators) but emits DIMACS text rather than populating an in-memory
// graph, since graph.Graph has no incremental builder API by design — it is
// immutable once constructed from CSR arrays via dimacsparser.Parse.
//
// This package is test-only support code: it is never imported by
// non-test files.
package dimacsgen
