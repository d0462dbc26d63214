package graph

import "errors"

// Sentinel errors returned by NewFromCSR when the arrays handed to it violate
// the CSR invariants described in doc.go. Construction code (dimacsparser, or
// hand-built test fixtures) should fail fast rather than hand back a Graph
// that callers would silently misread.
var (
	// ErrRowPtrLength indicates RowPtr's length is not n+1.
	ErrRowPtrLength = errors.New("graph: row_ptr length must be n+1")

	// ErrRowPtrNotMonotone indicates RowPtr decreases somewhere, or RowPtr[0] != 0.
	ErrRowPtrNotMonotone = errors.New("graph: row_ptr must be non-decreasing and start at 0")

	// ErrRowPtrArcMismatch indicates RowPtr[n] does not equal len(ColIdx)/len(Weights).
	ErrRowPtrArcMismatch = errors.New("graph: row_ptr[n] must equal the arc count")

	// ErrColWeightLengthMismatch indicates ColIdx and Weights have different lengths.
	ErrColWeightLengthMismatch = errors.New("graph: col_idx and weights must have equal length")

	// ErrVertexOutOfRange indicates a ColIdx entry references an id outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: col_idx entry out of range")

	// ErrCoordsLength indicates Coords' length is not n. NewFromCSR takes n
	// from len(coords) and so never returns it.
	ErrCoordsLength = errors.New("graph: coords length must equal n")

	// ErrNegativeWeight indicates a negative arc weight; the spec requires
	// weights to be non-negative (admissibility and Dijkstra both assume it).
	ErrNegativeWeight = errors.New("graph: arc weight must be non-negative")
)

// Coord is a vertex position in DIMACS microdegrees (degrees * 1e6), stored
// as a pair of signed 32-bit integers. It is never converted to floating
// point outside the search package's heuristic.
type Coord struct {
	LonMicro int32
	LatMicro int32
}

// Graph is an immutable Compressed-Sparse-Row directed graph plus a
// coordinate side-table. Zero value is an empty, queryable graph (n=0, m=0).
//
// Concurrency: a *Graph is never mutated after NewFromCSR returns, so it is
// safe for any number of readers (including concurrent search.Engine
// instances) without locking.
type Graph struct {
	rowPtr  []int32 // length n+1
	colIdx  []int32 // length m
	weights []int32 // length m
	coords  []Coord // length n
}

// N returns the vertex count.
func (g *Graph) N() int { return len(g.coords) }

// M returns the directed arc count.
func (g *Graph) M() int { return len(g.colIdx) }

// Coord returns the coordinate of vertex u. u must be in [0, N()).
func (g *Graph) Coord(u int) Coord { return g.coords[u] }

// Neighbours returns the half-open [begin, end) index range into ColIdx/
// Weight for vertex u's out-arcs. u must be in [0, N()).
func (g *Graph) Neighbours(u int) (begin, end int) {
	return int(g.rowPtr[u]), int(g.rowPtr[u+1])
}

// Degree returns the out-degree of vertex u.
func (g *Graph) Degree(u int) int {
	begin, end := g.Neighbours(u)
	return end - begin
}

// ColIdx returns the destination vertex of the arc at edge index i, where i
// is a value in a [begin, end) range returned by Neighbours.
func (g *Graph) ColIdx(i int) int { return int(g.colIdx[i]) }

// Weight returns the cost of the arc at edge index i.
func (g *Graph) Weight(i int) int32 { return g.weights[i] }

// RowPtr exposes the raw offset table read-only, for callers (tests,
// internal/dimacsgen round-trips) that want to walk the CSR layout directly
// rather than through Neighbours/ColIdx/Weight one vertex at a time.
func (g *Graph) RowPtr() []int32 { return g.rowPtr }
