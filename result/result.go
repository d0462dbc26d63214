package result

import (
	"strconv"
	"strings"
)

// NoPathCost is the sentinel Cost value reported when Path is empty because
// goal was unreachable from start.
const NoPathCost int64 = -1

// Result packages the outcome of a single search.Engine run: the path
// itself (0-based internal vertex ids, start...goal), its total cost, and
// the performance counters the spec requires every run to report.
type Result struct {
	// Path holds the 0-based vertex ids along the optimal path, start first
	// and goal last. Nil (and Cost == NoPathCost) when goal is unreachable.
	Path []int32

	// EdgeWeights holds len(Path)-1 entries: EdgeWeights[i] is the cost of
	// the arc Path[i] -> Path[i+1], captured directly from the search's
	// tentative-distance array during path reconstruction rather than
	// re-derived by re-scanning the graph.
	EdgeWeights []int32

	// Cost is the total path cost, or NoPathCost if unreachable.
	Cost int64

	// Expansions counts pops that passed the closed-set check.
	Expansions int

	// ElapsedMS is wall-clock time from immediately before state reset to
	// immediately after path reconstruction, in milliseconds.
	ElapsedMS int64
}

// Reached reports whether a path was found.
func (r Result) Reached() bool { return r.Cost != NoPathCost }

// Format1Based renders the path as "u1 - (w1) - u2 - (w2) - ... - uk", with
// each ui translated from the 0-based internal id back to the 1-based
// DIMACS id, matching the CLI output-file contract. It returns "" for an
// unreachable result — the caller is expected to log a diagnostic instead
// of writing an empty file, per spec.
func (r Result) Format1Based() string {
	if !r.Reached() || len(r.Path) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range r.Path {
		if i > 0 {
			b.WriteString(" - (")
			b.WriteString(strconv.FormatInt(int64(r.EdgeWeights[i-1]), 10))
			b.WriteString(") - ")
		}
		b.WriteString(strconv.FormatInt(int64(v)+1, 10))
	}
	return b.String()
}

// Comparison holds the outcome of the CLI's --algorithm both mode: A* and
// Dijkstra run sequentially over the same engine, so a caller can confirm
// they agree on cost and compare their performance counters.
type Comparison struct {
	AStar    Result
	Dijkstra Result
}

// CostsAgree reports whether both runs found the same total cost (including
// both reporting no path).
func (c Comparison) CostsAgree() bool {
	return c.AStar.Cost == c.Dijkstra.Cost
}
