// Package dimacspath computes single-source, single-target shortest paths
// on very large, weighted, geo-referenced road graphs in the DIMACS 9th
// Challenge format (US-road-scale: tens of millions of vertices and arcs).
//
// 🚀 What is dimacspath?
//
//	A small set of tightly coupled packages that together parse a DIMACS
//	dataset into a compact, cache-friendly layout and search it with A*
//	(or plain Dijkstra) to produce an optimal-cost path plus instrumentation:
//
//	  • fastscan     — byte-level cursor primitives, zero allocation per line
//	  • dimacsparser — two-pass .gr/.co reader, builds the CSR graph
//	  • graph        — immutable Compressed-Sparse-Row graph + coordinates
//	  • bucketqueue  — monotone integer-keyed priority queue
//	  • search       — unified A*/Dijkstra driver over the CSR graph
//	  • result       — path/cost/expansion/timing value types
//
// ✨ Why this shape?
//
//   - Predictable     — immutable graph, pre-allocated search state, no
//     surprise allocations on the hot path.
//   - Honest          — the engine never fails internally; every outcome,
//     including "no path", is a well-formed result.
//   - Idiomatic Go    — sentinel errors, functional options, no cgo.
//
// Quick start (library use):
//
//	g, err := dimacsparser.Parse("USA-road-d.USA")
//	if err != nil { ... }
//	eng := search.NewEngine(g)
//	res, err := eng.Run(start, goal, search.DefaultHeuristicProfile())
//
// The cmd/dimacspath command wraps this into a CLI:
//
//	dimacspath <start_1based> <goal_1based> <basename> <output_path> [--algorithm astar|dijkstra|both]
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full design
// rationale and grounding notes.
package dimacspath
