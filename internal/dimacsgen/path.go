package dimacsgen

import (
	"fmt"
	"strings"
)

// Path emits a straight-line graph of n vertices (n >= 2), arcs in both
// directions between consecutive vertices, each carrying weight. Vertex i
// sits at (i-1, 0) microdegrees, one microdegree per step along the
// equator.
//
// Panics if n < 2: this is a test-fixture constructor, not a runtime path,
// and a malformed size is a programmer error in the calling test.
func Path(n int, weight int32) (grText, coText string) {
	if n < 2 {
		panic("dimacsgen: Path(n<2)")
	}

	m := 2 * (n - 1)
	var gr strings.Builder
	fmt.Fprintf(&gr, "c synthetic path graph\np sp %d %d\n", n, m)
	for i := 1; i < n; i++ {
		fmt.Fprintf(&gr, "a %d %d %d\n", i, i+1, weight)
		fmt.Fprintf(&gr, "a %d %d %d\n", i+1, i, weight)
	}

	var co strings.Builder
	fmt.Fprintf(&co, "c synthetic path coordinates\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&co, "v %d %d 0\n", i, i-1)
	}

	return gr.String(), co.String()
}
