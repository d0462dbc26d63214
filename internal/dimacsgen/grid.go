package dimacsgen

import (
	"fmt"
	"strings"
)

// Grid emits a rows x cols 4-neighbourhood grid, arcs in both directions per
// edge, row-major 1-based vertex ids, each arc carrying weight. Vertex
// (r, c) sits at (c, r) microdegrees.
//
// Panics if rows < 1 or cols < 1.
func Grid(rows, cols int, weight int32) (grText, coText string) {
	if rows < 1 || cols < 1 {
		panic("dimacsgen: Grid(rows<1 or cols<1)")
	}

	n := rows * cols
	id := func(r, c int) int { return r*cols + c + 1 }

	var edges [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, [2]int{id(r, c), id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{id(r, c), id(r+1, c)})
			}
		}
	}

	var gr strings.Builder
	fmt.Fprintf(&gr, "c synthetic grid graph\np sp %d %d\n", n, 2*len(edges))
	for _, e := range edges {
		fmt.Fprintf(&gr, "a %d %d %d\n", e[0], e[1], weight)
		fmt.Fprintf(&gr, "a %d %d %d\n", e[1], e[0], weight)
	}

	var co strings.Builder
	fmt.Fprintf(&co, "c synthetic grid coordinates\n")
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&co, "v %d %d %d\n", id(r, c), c, r)
		}
	}

	return gr.String(), co.String()
}
