package reachability

import "github.com/routeforge/dimacspath/graph"

// From runs breadth-first search over g starting at start and returns a
// boolean slice sized g.N(): reached[v] is true iff v is reachable from
// start along directed arcs.
//
// Complexity: O(n+m) time, O(n) space.
func From(g *graph.Graph, start int) []bool {
	reached := make([]bool, g.N())
	reached[start] = true

	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		begin, end := g.Neighbours(u)
		for i := begin; i < end; i++ {
			v := g.ColIdx(i)
			if !reached[v] {
				reached[v] = true
				queue = append(queue, v)
			}
		}
	}

	return reached
}
