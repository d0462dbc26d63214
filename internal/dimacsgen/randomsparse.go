package dimacsgen

import (
	"fmt"
	"math/rand"
	"strings"
)

// RandomSparse emits an Erdős–Rényi-like directed graph over n vertices
// (1-based ids; vertex i sits at (i, 0) microdegrees) where each
// ordered pair (i, j), i != j, is included independently with probability
// p, with weight drawn uniformly from [1, maxWeight]. Deterministic for a
// fixed seed: trial order is i ascending, then j ascending, matching the
// stable emission order a graph builder's random constructors document.
//
// Panics if n < 1 or p is outside [0, 1].
func RandomSparse(n int, p float64, maxWeight int32, seed int64) (grText, coText string) {
	if n < 1 {
		panic("dimacsgen: RandomSparse(n<1)")
	}
	if p < 0 || p > 1 {
		panic("dimacsgen: RandomSparse(p out of [0,1])")
	}
	rng := rand.New(rand.NewSource(seed))

	type arc struct {
		u, v int
		w    int32
	}
	var arcs []arc
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				w := int32(rng.Intn(int(maxWeight))) + 1
				arcs = append(arcs, arc{i, j, w})
			}
		}
	}

	var gr strings.Builder
	fmt.Fprintf(&gr, "c synthetic random sparse graph\np sp %d %d\n", n, len(arcs))
	for _, a := range arcs {
		fmt.Fprintf(&gr, "a %d %d %d\n", a.u, a.v, a.w)
	}

	var co strings.Builder
	fmt.Fprintf(&co, "c synthetic random sparse coordinates\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&co, "v %d %d 0\n", i, i)
	}

	return gr.String(), co.String()
}
