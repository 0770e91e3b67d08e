package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/trail"
)

func resortRecords() []trail.Record {
	return []trail.Record{
		{Start: "Base", End: "Summit", Length: 1650, Rating: trail.Lift, Name: "Summit Quad"},
		{Start: "Summit", End: "Mid", Length: 900, Rating: trail.Expert, Name: "Chute"},
		{Start: "Summit", End: "Mid", Length: 1200, Rating: trail.Intermediate, Name: "Roadrunner"},
		{Start: "Summit", End: "Mid", Length: 1100, Rating: trail.Easy, Name: "Lights Out"},
		{Start: "Mid", End: "Base", Length: 600, Rating: trail.Easy, Name: "Lower Bowl"},
	}
}

func resortCoords() map[NodeId]geo.Point {
	return map[NodeId]geo.Point{
		"Base":   geo.MakePoint(44.2591, -71.2509),
		"Mid":    geo.MakePoint(44.2622, -71.2566),
		"Summit": geo.MakePoint(44.2665, -71.2621),
	}
}

func TestBuildCollapsesDuplicates(t *testing.T) {
	records := []trail.Record{
		{Start: "A", End: "B", Length: 100, Rating: trail.Easy, Name: "Long"},
		{Start: "A", End: "B", Length: 80, Rating: trail.Easy, Name: "Short"},
	}
	alg, err := Build(records, trail.Expert, nil)
	require.NoError(t, err)

	arc, ok := alg.GetArc("A", "B")
	require.True(t, ok)
	assert.Equal(t, 80.0, arc.Length)
	assert.Equal(t, "Short", arc.Name)
	assert.Equal(t, 1, alg.ArcCount())
}

func TestBuildFiltersByRating(t *testing.T) {
	alg, err := Build(resortRecords(), trail.Intermediate, nil)
	require.NoError(t, err)

	// the expert chute is shorter, but not allowed
	arc, ok := alg.GetArc("Summit", "Mid")
	require.True(t, ok)
	assert.Equal(t, "Lights Out", arc.Name)
	assert.Equal(t, 1100.0, arc.Length)

	alg, err = Build(resortRecords(), trail.Expert, nil)
	require.NoError(t, err)
	arc, _ = alg.GetArc("Summit", "Mid")
	assert.Equal(t, "Chute", arc.Name)

	alg, err = Build(resortRecords(), trail.Lift, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, alg.ArcCount())
}

func TestBuildExcludesClosedTrails(t *testing.T) {
	closed := map[string]struct{}{"Lights Out": {}, "Chute": {}}

	alg, err := Build(resortRecords(), trail.Expert, closed)
	require.NoError(t, err)
	arc, ok := alg.GetArc("Summit", "Mid")
	require.True(t, ok)
	assert.Equal(t, "Roadrunner", arc.Name)

	alg, err = Build(resortRecords(), trail.Expert, nil)
	require.NoError(t, err)
	arc, ok = alg.GetArc("Summit", "Mid")
	require.True(t, ok)
	assert.Equal(t, "Chute", arc.Name)

	onlyRoute := map[string]struct{}{"Lower Bowl": {}}
	alg, err = Build(resortRecords(), trail.Expert, onlyRoute)
	require.NoError(t, err)
	_, ok = alg.GetArc("Mid", "Base")
	assert.False(t, ok)
}

func TestBuildDoesNotInferReverseArcs(t *testing.T) {
	alg, err := Build(resortRecords(), trail.Expert, nil)
	require.NoError(t, err)
	_, ok := alg.GetArc("Summit", "Base")
	assert.False(t, ok)
	_, ok = alg.GetArc("Base", "Mid")
	assert.False(t, ok)
}

func TestBuildIsIdempotent(t *testing.T) {
	first, err := BuildWithNodes(resortCoords(), resortRecords(), trail.Advanced, nil)
	require.NoError(t, err)
	second, err := BuildWithNodes(resortCoords(), resortRecords(), trail.Advanced, nil)
	require.NoError(t, err)

	assert.Equal(t, first.AsString(), second.AsString())
	assert.Equal(t, first, second)
}

func TestBuildWithNodesRejectsUnknownNodes(t *testing.T) {
	records := append(resortRecords(), trail.Record{Start: "Mid", End: "Lodge", Length: 50, Rating: trail.Easy, Name: "Lodge Path"})

	_, err := BuildWithNodes(resortCoords(), records, trail.Expert, nil)
	require.ErrorIs(t, err, ErrUnknownNode)
	var unknown *UnknownNodeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Lodge", unknown.Node)
	assert.Equal(t, "Lodge Path", unknown.Record.Name)

	// ineligible records are not validated
	_, err = BuildWithNodes(resortCoords(), records, trail.Expert, map[string]struct{}{"Lodge Path": {}})
	assert.NoError(t, err)

	// without coordinates the builder does not validate node references
	_, err = Build(records, trail.Expert, nil)
	assert.NoError(t, err)
}

func TestBuildRejectsNegativeLength(t *testing.T) {
	records := []trail.Record{{Start: "A", End: "B", Length: -1, Rating: trail.Easy, Name: "Broken"}}
	_, err := Build(records, trail.Expert, nil)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestBuildWithNodesKeepsIsolatedNodes(t *testing.T) {
	alg, err := BuildWithNodes(resortCoords(), nil, trail.Expert, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, alg.NodeCount())
	assert.Equal(t, 0, alg.ArcCount())
	assert.Equal(t, []NodeId{"Base", "Mid", "Summit"}, alg.GetNodes())
}
