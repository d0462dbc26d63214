package graph

// NewFromCSR validates and wraps already-built CSR arrays into a Graph.
//
// Callers (dimacsparser, internal/dimacsgen round-trip tests, hand-built
// fixtures in unit tests) are expected to have already performed the
// degree-count / prefix-sum / scatter construction described in
// dimacsparser's doc.go; NewFromCSR's job is solely to check the invariants
// from doc.go and fail fast rather than let a malformed Graph escape into
// search.Engine.
//
// The input slices are retained by reference, not copied: NewFromCSR takes
// ownership, and callers must not mutate rowPtr/colIdx/weights/coords after
// the call succeeds.
//
// Complexity: O(n+m) to validate every row_ptr and col_idx entry.
//
// The vertex count n is taken from len(coords).
//
// Errors: ErrRowPtrLength, ErrRowPtrNotMonotone, ErrRowPtrArcMismatch,
// ErrColWeightLengthMismatch, ErrVertexOutOfRange, ErrNegativeWeight — see
// their doc comments in types.go.
func NewFromCSR(rowPtr []int32, colIdx []int32, weights []int32, coords []Coord) (*Graph, error) {
	n := len(coords)
	if len(rowPtr) != n+1 {
		return nil, ErrRowPtrLength
	}
	if len(colIdx) != len(weights) {
		return nil, ErrColWeightLengthMismatch
	}

	if rowPtr[0] != 0 {
		return nil, ErrRowPtrNotMonotone
	}
	for u := 0; u < n; u++ {
		if rowPtr[u+1] < rowPtr[u] {
			return nil, ErrRowPtrNotMonotone
		}
	}
	if int(rowPtr[n]) != len(colIdx) {
		return nil, ErrRowPtrArcMismatch
	}

	for i, v := range colIdx {
		if v < 0 || int(v) >= n {
			return nil, ErrVertexOutOfRange
		}
		if weights[i] < 0 {
			return nil, ErrNegativeWeight
		}
	}

	return &Graph{
		rowPtr:  rowPtr,
		colIdx:  colIdx,
		weights: weights,
		coords:  coords,
	}, nil
}
