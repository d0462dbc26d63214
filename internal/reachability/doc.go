// Package reachability provides a breadth-first connectivity oracle over a
// graph.Graph, adapted to CSR int ids from a general-purpose BFS walker.
//
// It exists purely to support the search package's test suite: checking
// that a disconnected-graph fixture is actually disconnected, and that a
// connected fixture is actually connected, without duplicating that logic
// inside every test.
package reachability
