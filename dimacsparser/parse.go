package dimacsparser

import (
	"fmt"

	"github.com/routeforge/dimacspath/fastscan"
	"github.com/routeforge/dimacspath/graph"
)

// arc is the intermediate (0-based) representation held in memory between
// the degree-count pass and the CSR scatter.
type arc struct {
	u, v int32
	w    int32
}

// Parse reads <basename>.gr and <basename>.co and builds a graph.Graph.
//
// Errors: ErrIoOpenFailed, ErrHeaderMissing, ErrHeaderMalformed,
// ErrCountMismatch, ErrVertexOutOfRange, or a graph.Graph validation error if
// the constructed CSR arrays somehow fail an invariant check (defense in
// depth; should not happen if this package's own checks above are correct).
func Parse(basename string, opts ...Option) (*graph.Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	grPath := basename + ".gr"
	grBuf, grClose, err := mapFile(grPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoOpenFailed, grPath, err)
	}
	defer grClose()

	n, rowPtr, colIdx, weights, err := parseArcs(grBuf, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.progress != nil {
		cfg.progress("arcs", len(colIdx), len(colIdx))
	}

	coPath := basename + ".co"
	coBuf, coClose, err := mapFile(coPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoOpenFailed, coPath, err)
	}
	defer coClose()

	coords, err := parseCoords(coBuf, n)
	if err != nil {
		return nil, err
	}
	if cfg.progress != nil {
		cfg.progress("coords", n, n)
	}

	return graph.NewFromCSR(rowPtr, colIdx, weights, coords)
}

// parseArcs runs the first three steps of the construction algorithm: read
// the arc file, accumulate arcs and degrees, then prefix-sum and scatter.
func parseArcs(buf []byte, cfg config) (n int, rowPtr, colIdx, weights []int32, err error) {
	pos, end := 0, len(buf)
	declaredN, declaredM := -1, -1
	var arcs []arc

	for pos < end {
		pos = fastscan.SkipSpaces(buf, pos)
		if pos >= end {
			break
		}

		switch buf[pos] {
		case 'c':
			pos = fastscan.SkipLine(buf, pos)

		case 'p':
			pos = fastscan.SkipNonSpaces(buf, pos) // "p"
			pos = fastscan.SkipSpaces(buf, pos)
			kindStart := pos
			pos = fastscan.SkipNonSpaces(buf, pos) // "sp"
			if string(buf[kindStart:pos]) != "sp" {
				return 0, nil, nil, nil, ErrHeaderMalformed
			}
			pos = fastscan.SkipSpaces(buf, pos)
			var nn, mm uint64
			nStart := pos
			nn, pos = fastscan.ParseUnsigned(buf, pos)
			if pos == nStart {
				return 0, nil, nil, nil, ErrHeaderMalformed
			}
			pos = fastscan.SkipSpaces(buf, pos)
			mStart := pos
			mm, pos = fastscan.ParseUnsigned(buf, pos)
			if pos == mStart {
				return 0, nil, nil, nil, ErrHeaderMalformed
			}
			declaredN, declaredM = int(nn), int(mm)
			arcs = make([]arc, 0, declaredM)
			pos = fastscan.SkipLine(buf, pos)

		case 'a':
			if declaredN < 0 {
				return 0, nil, nil, nil, ErrHeaderMissing
			}
			a, next, perr := readArcLine(buf, pos, declaredN, 0, true)
			if perr != nil {
				return 0, nil, nil, nil, perr
			}
			arcs = append(arcs, a)
			pos = next

		case 'e':
			if !cfg.allowEdgeLines {
				pos = fastscan.SkipLine(buf, pos)
				continue
			}
			if declaredN < 0 {
				return 0, nil, nil, nil, ErrHeaderMissing
			}
			a, next, perr := readArcLine(buf, pos, declaredN, 1, false)
			if perr != nil {
				return 0, nil, nil, nil, perr
			}
			arcs = append(arcs, a)
			pos = next

		default:
			pos = fastscan.SkipLine(buf, pos)
		}
	}

	if declaredN < 0 {
		return 0, nil, nil, nil, ErrHeaderMissing
	}
	if len(arcs) != declaredM {
		return 0, nil, nil, nil, ErrCountMismatch
	}

	degree := make([]int32, declaredN)
	for _, a := range arcs {
		degree[a.u]++
	}
	rowPtr = make([]int32, declaredN+1)
	for u := 0; u < declaredN; u++ {
		rowPtr[u+1] = rowPtr[u] + degree[u]
	}
	if int(rowPtr[declaredN]) != len(arcs) {
		return 0, nil, nil, nil, ErrCountMismatch
	}

	colIdx = make([]int32, len(arcs))
	weights = make([]int32, len(arcs))
	cursor := append([]int32(nil), rowPtr...)
	for _, a := range arcs {
		i := cursor[a.u]
		colIdx[i] = a.v
		weights[i] = a.w
		cursor[a.u]++
	}

	return declaredN, rowPtr, colIdx, weights, nil
}

// readArcLine parses a single "a u v w" or "e u v" line starting at the
// classifying byte. impliedWeight is used (and the weight field is not
// read) when readWeight is false.
func readArcLine(buf []byte, pos, declaredN int, impliedWeight int32, readWeight bool) (arc, int, error) {
	pos = fastscan.SkipNonSpaces(buf, pos) // "a" or "e"
	pos = fastscan.SkipSpaces(buf, pos)
	uu, next := fastscan.ParseUnsigned(buf, pos)
	pos = fastscan.SkipSpaces(buf, next)
	vv, next2 := fastscan.ParseUnsigned(buf, pos)
	pos = next2

	w := impliedWeight
	if readWeight {
		pos = fastscan.SkipSpaces(buf, pos)
		ww, next3 := fastscan.ParseSigned(buf, pos)
		pos = next3
		w = int32(ww)
	}
	pos = fastscan.SkipLine(buf, pos)

	if int(uu) < 1 || int(uu) > declaredN || int(vv) < 1 || int(vv) > declaredN {
		return arc{}, pos, ErrVertexOutOfRange
	}
	return arc{u: int32(uu - 1), v: int32(vv - 1), w: w}, pos, nil
}

// parseCoords reads v lines into a coords slice sized to n.
func parseCoords(buf []byte, n int) ([]graph.Coord, error) {
	coords := make([]graph.Coord, n)
	pos, end := 0, len(buf)

	for pos < end {
		pos = fastscan.SkipSpaces(buf, pos)
		if pos >= end {
			break
		}

		switch buf[pos] {
		case 'c', 'p':
			pos = fastscan.SkipLine(buf, pos)

		case 'v':
			pos = fastscan.SkipNonSpaces(buf, pos) // "v"
			pos = fastscan.SkipSpaces(buf, pos)
			id, next := fastscan.ParseUnsigned(buf, pos)
			pos = fastscan.SkipSpaces(buf, next)
			lon, next2 := fastscan.ParseSigned(buf, pos)
			pos = fastscan.SkipSpaces(buf, next2)
			lat, next3 := fastscan.ParseSigned(buf, pos)
			pos = fastscan.SkipLine(buf, next3)

			if int(id) < 1 || int(id) > n {
				return nil, ErrVertexOutOfRange
			}
			coords[id-1] = graph.Coord{LonMicro: int32(lon), LatMicro: int32(lat)}

		default:
			pos = fastscan.SkipLine(buf, pos)
		}
	}

	return coords, nil
}
