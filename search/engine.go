package search

import (
	"math"
	"time"

	"github.com/routeforge/dimacspath/bucketqueue"
	"github.com/routeforge/dimacspath/graph"
	"github.com/routeforge/dimacspath/result"
)

// defaultWidth is the bucket-queue width used unless twice the graph's
// maximum arc weight plus 16 exceeds it. Road graphs at
// USA-road-d scale keep every outstanding f-value span well below this, per
// spec §4.4.
const defaultWidth = 100_000

// Engine drives A*/Dijkstra searches over a single graph.Graph. It owns a
// bucketqueue.Queue, a closed bitmap, a tentative-cost array (g), and a
// parent array, all pre-allocated to the graph's vertex count and reused
// across queries via reset.
//
// Engine borrows its Graph immutably for its whole lifetime. It is not safe
// for concurrent use: run queries on the same Engine sequentially, or build
// one Engine per goroutine (each is cheap relative to the graph itself).
type Engine struct {
	g *graph.Graph

	gScore []int64
	parent []int32
	closed []bool
	queue  *bucketqueue.Queue

	expansions int
}

// NewEngine allocates an Engine sized to g. g must not be mutated afterward
// (graph.Graph is immutable by construction, so this is automatic).
//
// Complexity: O(n) to allocate state, plus O(m) to scan arc weights once in
// order to size the bucket queue.
func NewEngine(g *graph.Graph) *Engine {
	n := g.N()
	width := defaultWidth
	if w := 2*maxWeight(g) + 16; w > width {
		width = w
	}
	q, err := bucketqueue.New(width)
	if err != nil {
		// width is always >= defaultWidth > 0; New only rejects width <= 0.
		panic(err)
	}
	return &Engine{
		g:      g,
		gScore: make([]int64, n),
		parent: make([]int32, n),
		closed: make([]bool, n),
		queue:  q,
	}
}

func maxWeight(g *graph.Graph) int {
	max := 0
	for i := 0; i < g.M(); i++ {
		if w := int(g.Weight(i)); w > max {
			max = w
		}
	}
	return max
}

// reset reinitializes all per-query state in place: no reallocation.
func (e *Engine) reset() {
	for i := range e.gScore {
		e.gScore[i] = inf
		e.parent[i] = none
		e.closed[i] = false
	}
	e.queue.Clear()
	e.expansions = 0
}

// Run performs A* from start to goal using profile to calibrate the
// admissible equirectangular heuristic.
//
// Errors: ErrVertexOutOfRange if start or goal is outside [0, N()). Every
// other outcome, including an unreachable goal, is reported in the returned
// result.Result with a nil error.
func (e *Engine) Run(start, goal int32, profile HeuristicProfile) (result.Result, error) {
	return e.run(start, goal, true, profile)
}

// RunDijkstra performs plain Dijkstra from start to goal (null heuristic).
func (e *Engine) RunDijkstra(start, goal int32) (result.Result, error) {
	return e.run(start, goal, false, HeuristicProfile{})
}

func (e *Engine) run(start, goal int32, useHeuristic bool, profile HeuristicProfile) (result.Result, error) {
	n := int32(e.g.N())
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return result.Result{}, ErrVertexOutOfRange
	}

	t0 := time.Now()
	e.reset()

	var cosLatGoal float64
	if useHeuristic {
		goalCoord := e.g.Coord(int(goal))
		cosLatGoal = math.Cos(float64(goalCoord.LatMicro) * 1e-6 * math.Pi / 180)
	}
	h := func(v int32) int {
		if !useHeuristic {
			return 0
		}
		return equirectangularHeuristic(e.g, v, goal, cosLatGoal, profile)
	}

	e.gScore[start] = 0
	e.parent[start] = none
	e.queue.Push(start, h(start))

	for !e.queue.Empty() {
		u, err := e.queue.Pop()
		if err != nil {
			break // unreachable: Empty() was just checked false
		}
		if e.closed[u] {
			continue // lazy deletion: obsolete entry
		}
		e.closed[u] = true
		e.expansions++

		if u == goal {
			break
		}

		begin, end := e.g.Neighbours(int(u))
		for i := begin; i < end; i++ {
			v := int32(e.g.ColIdx(i))
			if e.closed[v] {
				continue
			}
			newG := e.gScore[u] + int64(e.g.Weight(i))
			if newG < e.gScore[v] {
				e.gScore[v] = newG
				e.parent[v] = u
				e.queue.Push(v, int(newG)+h(v))
			}
		}
	}

	return e.buildResult(start, goal, t0), nil
}

// buildResult reconstructs the path (if any) from the parent array and
// packages it with the cost and counters gathered during run. Elapsed time
// is measured from t0 to the end of path reconstruction.
func (e *Engine) buildResult(start, goal int32, t0 time.Time) result.Result {
	if e.gScore[goal] >= inf {
		return result.Result{
			Cost:       result.NoPathCost,
			Expansions: e.expansions,
			ElapsedMS:  time.Since(t0).Milliseconds(),
		}
	}

	var path []int32
	for u := goal; ; {
		path = append(path, u)
		if u == start {
			break
		}
		u = e.parent[u]
	}
	// path was built goal -> start; reverse to start -> goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	edgeWeights := make([]int32, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		edgeWeights = append(edgeWeights, int32(e.gScore[path[i+1]]-e.gScore[path[i]]))
	}
	elapsed := time.Since(t0)

	return result.Result{
		Path:        path,
		EdgeWeights: edgeWeights,
		Cost:        e.gScore[goal],
		Expansions:  e.expansions,
		ElapsedMS:   elapsed.Milliseconds(),
	}
}

// equirectangularHeuristic computes an admissible lower bound on the true
// shortest remaining cost from v to goal, per spec §4.5:
//
//  1. dlat, dlon: absolute microdegree differences, widened to 64-bit.
//  2. dlon is scaled by cos(lat_goal) to approximate a flattened projection.
//  3. the Euclidean distance of (dlat, dlon_scaled) is converted from
//     microdegrees to the graph's arc-weight unit by K and shrunk by the
//     admissibility factor A, then floored to an int.
func equirectangularHeuristic(g *graph.Graph, v, goal int32, cosLatGoal float64, profile HeuristicProfile) int {
	a := g.Coord(int(v))
	b := g.Coord(int(goal))

	dlat := int64(a.LatMicro) - int64(b.LatMicro)
	if dlat < 0 {
		dlat = -dlat
	}
	dlon := int64(a.LonMicro) - int64(b.LonMicro)
	if dlon < 0 {
		dlon = -dlon
	}

	dlonScaled := float64(dlon) * cosLatGoal
	dist := math.Sqrt(float64(dlat)*float64(dlat) + dlonScaled*dlonScaled)

	return int(math.Floor(dist * profile.MicrodegToWeightUnit * profile.AdmissibilityFactor))
}
