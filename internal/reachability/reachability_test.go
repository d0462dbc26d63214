package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/dimacspath/graph"
	"github.com/routeforge/dimacspath/internal/reachability"
)

func TestFrom_ConnectedLine(t *testing.T) {
	rowPtr := []int32{0, 1, 2, 2}
	colIdx := []int32{1, 2}
	weights := []int32{1, 1}
	coords := make([]graph.Coord, 3)
	g, err := graph.NewFromCSR(rowPtr, colIdx, weights, coords)
	require.NoError(t, err)

	reached := reachability.From(g, 0)
	require.Equal(t, []bool{true, true, true}, reached)
}

func TestFrom_Disconnected(t *testing.T) {
	rowPtr := []int32{0, 0, 0}
	coords := make([]graph.Coord, 2)
	g, err := graph.NewFromCSR(rowPtr, nil, nil, coords)
	require.NoError(t, err)

	reached := reachability.From(g, 0)
	require.Equal(t, []bool{true, false}, reached)
}

func TestFrom_StartVertexAlwaysReached(t *testing.T) {
	rowPtr := []int32{0, 0}
	coords := make([]graph.Coord, 1)
	g, err := graph.NewFromCSR(rowPtr, nil, nil, coords)
	require.NoError(t, err)

	reached := reachability.From(g, 0)
	require.Equal(t, []bool{true}, reached)
}
