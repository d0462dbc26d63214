// Package search implements a unified A*/Dijkstra driver over a CSR
// graph.Graph, using a bucketqueue.Queue, lazy deletion via a closed
// bitmap, a parent array, and a 64-bit tentative-cost array.
//
// # Overview
//
//   - Engine.Run performs A* using an admissible equirectangular-projection
//     heuristic derived from vertex coordinates.
//   - Engine.RunDijkstra performs plain Dijkstra (the same loop, with a null
//     heuristic) — useful both as a correctness oracle for A* and as a
//     fallback for datasets without coordinates.
//   - Both reset (not reallocate) the engine's state at the start of every
//     call, so a single Engine can serve many queries over the same graph.
//
// # Algorithm
//
//	g[start] = 0; parent[start] = NONE
//	push(start, h(start))            // Dijkstra: h ≡ 0
//	while not empty:
//	    u = pop()
//	    if closed[u]: continue       // lazy deletion
//	    closed[u] = 1; expansions += 1
//	    if u == goal: break
//	    for each (v, w) in neighbours(u):
//	        new_g = g[u] + w
//	        if new_g < g[v]:
//	            g[v] = new_g
//	            parent[v] = u
//	            push(v, new_g + h(v))
//
// # Heuristic
//
// h(v) is an equirectangular-projection distance from v to goal, scaled by a
// per-dataset calibration constant K (microdegrees -> arc-weight unit) and
// an admissibility safety factor A in (0,1] that absorbs the flat-projection
// error, so that h(v) <= the true shortest remaining cost. See
// HeuristicProfile and DefaultHeuristicProfile/MetersHeuristicProfile.
//
// # Instrumentation and failure semantics
//
// Engine never fails internally: both Run and RunDijkstra return a non-nil
// error only when start or goal is out of [0, N()) — a caller precondition
// violation, per ErrVertexOutOfRange. An unreachable goal is not an error;
// it is reported as a result.Result with an empty Path.
package search
