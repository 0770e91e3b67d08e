package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/graph"
)

var resortCoords = map[graph.NodeId]geo.Point{
	"Base":   geo.MakePoint(44.2591, -71.2509),
	"Mid":    geo.MakePoint(44.2622, -71.2566),
	"Summit": geo.MakePoint(44.2665, -71.2621),
}

var resortNodes = []graph.NodeId{"Base", "Mid", "Summit"}

func TestInformedHeuristic(t *testing.T) {
	h, err := BuildHeuristic(resortNodes, resortCoords, "Base", Informed, nil)
	require.NoError(t, err)
	require.Len(t, h, 3)

	assert.Zero(t, h["Base"])
	assert.Equal(t, geo.Distance(resortCoords["Mid"], resortCoords["Base"]), h["Mid"])
	assert.Greater(t, h["Summit"], h["Mid"])
	for _, v := range h {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestInformedHeuristicUsesDistanceFunc(t *testing.T) {
	calls := 0
	constant := func(a, b geo.Point) float64 {
		calls++
		return 42
	}
	h, err := BuildHeuristic(resortNodes, resortCoords, "Summit", Informed, constant)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, Heuristic{"Base": 42, "Mid": 42, "Summit": 0}, h)
}

func TestUninformedHeuristic(t *testing.T) {
	h, err := BuildHeuristic(resortNodes, nil, "Somewhere", Uninformed, nil)
	require.NoError(t, err)
	assert.Equal(t, Heuristic{"Base": 0, "Mid": 0, "Summit": 0}, h)
}

func TestHeuristicErrors(t *testing.T) {
	_, err := BuildHeuristic(resortNodes, resortCoords, "Lodge", Informed, nil)
	assert.ErrorIs(t, err, ErrUnknownGoal)

	_, err = BuildHeuristic(append(resortNodes, "Lodge"), resortCoords, "Base", Informed, nil)
	assert.ErrorIs(t, err, ErrMissingCoordinate)

	_, err = BuildHeuristic(resortNodes, resortCoords, "Base", HeuristicMode(7), nil)
	assert.Error(t, err)
	assert.Equal(t, "HeuristicMode(7)", HeuristicMode(7).String())
	assert.Equal(t, "informed", Informed.String())
}
