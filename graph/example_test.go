package graph_test

import (
	"fmt"

	"github.com/routeforge/dimacspath/graph"
)

// ExampleNewFromCSR builds the triangle-with-shortcut graph from spec
// boundary scenario 4: 1->2 (5), 2->3 (5), 1->3 (9), 0-based as 0->1, 0->2,
// 1->2 in CSR order.
func ExampleNewFromCSR() {
	rowPtr := []int32{0, 2, 3, 3}
	colIdx := []int32{1, 2, 2}
	weights := []int32{5, 9, 5}
	coords := []graph.Coord{{0, 0}, {1_000_000, 0}, {2_000_000, 0}}

	g, err := graph.NewFromCSR(rowPtr, colIdx, weights, coords)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	begin, end := g.Neighbours(0)
	for i := begin; i < end; i++ {
		fmt.Printf("0 -> %d (%d)\n", g.ColIdx(i), g.Weight(i))
	}
	// Output:
	// 0 -> 1 (5)
	// 0 -> 2 (9)
}
