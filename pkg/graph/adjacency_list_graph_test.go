package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resortGraph = `5
6
#Nodes
"Base" 44.2591 -71.2509
"Mid Station" 44.2622 -71.2566
"Summit" 44.2665 -71.2621
"Ticket Office"
"Tree Line" 44.2641 -71.2588
#Edges
"Base" "Summit" 1650 "Summit Quad"
"Base" "Ticket Office" 40 "Walkway"
"Mid Station" "Base" 540.5 "Lower Bowl"
"Summit" "Tree Line" 420 "Summit Run"
"Summit" "Mid Station" 910 "Roadrunner"
"Tree Line" "Mid Station" 310 "Summit Run"
`

func TestGraphReading(t *testing.T) {
	alg, err := NewAdjacencyListFromFmiString(resortGraph)
	require.NoError(t, err)
	assert.Equal(t, resortGraph, alg.AsString())
	assert.Equal(t, 5, alg.NodeCount())
	assert.Equal(t, 6, alg.ArcCount())
	assert.Nil(t, alg.GetNode("Ticket Office"))
	require.NotNil(t, alg.GetNode("Summit"))
	assert.Equal(t, 44.2665, alg.GetNode("Summit").Lat())

	arcs := alg.GetArcsFrom("Summit")
	require.Len(t, arcs, 2)
	assert.Equal(t, "Tree Line", arcs[0].Destination())
	assert.Equal(t, "Mid Station", arcs[1].Destination())

	arc, ok := alg.GetArc("Mid Station", "Base")
	require.True(t, ok)
	assert.Equal(t, 540.5, arc.Cost())
	assert.Equal(t, "Lower Bowl", arc.Name)

	_, ok = alg.GetArc("Base", "Mid Station")
	assert.False(t, ok)
}

func TestGraphReadingErrors(t *testing.T) {
	_, err := NewAdjacencyListFromFmiString("two\n0\n")
	assert.Error(t, err)

	_, err = NewAdjacencyListFromFmiString("2\n0\n\"A\" 1 2\n")
	assert.Error(t, err, "announced node count must match")

	_, err = NewAdjacencyListFromFmiString("1\n1\n\"A\"\n\"A\" \"B\"\n")
	assert.Error(t, err, "edges need a length and a name")
}

func TestAddArcKeepsShortest(t *testing.T) {
	alg := NewAdjacencyListGraph()
	assert.True(t, alg.AddArc("A", "B", 100, "Long Way"))
	assert.False(t, alg.AddArc("A", "B", 100, "Same Length"))
	assert.True(t, alg.AddArc("A", "C", 5, "Other"))
	assert.True(t, alg.AddArc("A", "B", 80, "Short Way"))
	assert.False(t, alg.AddArc("A", "B", 90, "Middle Way"))

	assert.Equal(t, 2, alg.ArcCount())
	arc, ok := alg.GetArc("A", "B")
	require.True(t, ok)
	assert.Equal(t, 80.0, arc.Length)
	assert.Equal(t, "Short Way", arc.Name)

	// the replaced arc keeps its position
	assert.Equal(t, "B", alg.GetArcsFrom("A")[0].To)
	assert.True(t, alg.HasNode("C"))
	assert.Empty(t, alg.GetArcsFrom("C"))
}
