package graph_test

import (
	"testing"

	"github.com/routeforge/dimacspath/graph"
)

// gridCSR builds a w*h 4-neighbour grid's CSR arrays directly, unit weights,
// coordinates one microdegree apart.
func gridCSR(w, h int) ([]int32, []int32, []int32, []graph.Coord) {
	n := w * h
	idx := func(x, y int) int32 { return int32(y*w + x) }
	rowPtr := make([]int32, n+1)
	var colIdx, weights []int32
	coords := make([]graph.Coord, n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := idx(x, y)
			coords[u] = graph.Coord{LonMicro: int32(x), LatMicro: int32(y)}
			if x > 0 {
				colIdx = append(colIdx, idx(x-1, y))
				weights = append(weights, 1)
			}
			if x < w-1 {
				colIdx = append(colIdx, idx(x+1, y))
				weights = append(weights, 1)
			}
			if y > 0 {
				colIdx = append(colIdx, idx(x, y-1))
				weights = append(weights, 1)
			}
			if y < h-1 {
				colIdx = append(colIdx, idx(x, y+1))
				weights = append(weights, 1)
			}
			rowPtr[u+1] = int32(len(colIdx))
		}
	}
	return rowPtr, colIdx, weights, coords
}

// BenchmarkNewFromCSR measures the cost of the full row_ptr/col_idx
// validation pass over a million-vertex grid, the one-time cost paid once
// per dimacsparser.Parse call.
func BenchmarkNewFromCSR(b *testing.B) {
	rowPtr, colIdx, weights, coords := gridCSR(1000, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := graph.NewFromCSR(rowPtr, colIdx, weights, coords); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbours_Walk measures the cost of walking every out-arc of
// every vertex via Neighbours/ColIdx/Weight, the access pattern search.Engine
// runs once per expansion.
func BenchmarkNeighbours_Walk(b *testing.B) {
	rowPtr, colIdx, weights, coords := gridCSR(1000, 1000)
	g, err := graph.NewFromCSR(rowPtr, colIdx, weights, coords)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		for u := 0; u < g.N(); u++ {
			begin, end := g.Neighbours(u)
			for e := begin; e < end; e++ {
				sum += int64(g.Weight(e))
				_ = g.ColIdx(e)
			}
		}
		if sum == 0 {
			b.Fatal("unexpected zero-weight grid")
		}
	}
}
