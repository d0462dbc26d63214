package search

import (
	"errors"
	"math"
)

// ErrVertexOutOfRange indicates that a caller passed a start or goal vertex
// id outside [0, N()). This is the engine's one precondition check; per
// spec, the engine never fails for any other reason.
var ErrVertexOutOfRange = errors.New("search: start or goal vertex out of range")

// inf is the tentative-distance sentinel: larger than any reachable path
// cost for realistic road-graph inputs, but finite enough that arithmetic
// against it could not silently wrap. The search loop only compares against
// it; it only adds arc weights to the cost of a popped vertex, which is
// always finite.
const inf int64 = math.MaxInt64 / 2

// none marks "no predecessor" in the parent array.
const none int32 = -1

// HeuristicProfile calibrates the admissible equirectangular heuristic used
// by Engine.Run. It is a construction-time input, not mutable module state:
// the DIMACS road datasets use different arc-weight units (the USA-road-d
// family uses decimeters; others use meters), so the microdegree-to-weight-
// unit conversion constant and the admissibility safety factor must be
// supplied explicitly rather than assumed.
type HeuristicProfile struct {
	// MicrodegToWeightUnit (K) converts an equirectangular microdegree
	// distance into the graph's arc-weight unit.
	MicrodegToWeightUnit float64
	// AdmissibilityFactor (A) is in (0,1]; it absorbs the flat-projection
	// error of the equirectangular approximation so that h(v) never
	// exceeds the true remaining shortest-path cost.
	AdmissibilityFactor float64
}

// DefaultHeuristicProfile returns the calibration for the USA-road-d dataset
// family, whose arc weights are in decimeters: K ~= 1.111949 decimeters per
// microdegree, A = 0.999.
func DefaultHeuristicProfile() HeuristicProfile {
	return HeuristicProfile{
		MicrodegToWeightUnit: 1.111949,
		AdmissibilityFactor:  0.999,
	}
}

// MetersHeuristicProfile returns the calibration for datasets whose arc
// weights are in meters: K ~= 0.111195 meters per microdegree, A = 0.999.
func MetersHeuristicProfile() HeuristicProfile {
	return HeuristicProfile{
		MicrodegToWeightUnit: 0.111195,
		AdmissibilityFactor:  0.999,
	}
}
