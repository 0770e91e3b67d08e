package routing

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	polyline "github.com/twpayne/go-polyline"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/graph/path"
	"github.com/natevvv/ski-routing/pkg/trail"
)

// all nodes are on one meridian, a few meters apart, so the geodesic distance never exceeds the trail lengths
func testCoords() map[string]geo.Point {
	return map[string]geo.Point{
		"A": geo.MakePoint(46.00004, 7.0),
		"B": geo.MakePoint(46.00003, 7.0),
		"C": geo.MakePoint(46.00002, 7.0),
		"D": geo.MakePoint(46.0, 7.0),
		"E": geo.MakePoint(46.1, 7.1),
	}
}

func testRecords() []trail.Record {
	return []trail.Record{
		{Start: "A", End: "B", Length: 10, Rating: trail.Intermediate, Name: "T1"},
		{Start: "B", End: "D", Length: 5, Rating: trail.Easy, Name: "T2"},
		{Start: "A", End: "C", Length: 3, Rating: trail.Easy, Name: "T3"},
		{Start: "C", End: "D", Length: 3, Rating: trail.Easy, Name: "T3"},
	}
}

func testRouter() *Router {
	return NewRouter(testCoords(), testRecords(), []string{"T3"})
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm(" A-Star ")
	require.NoError(t, err)
	assert.Equal(t, AStar, alg)

	alg, err = ParseAlgorithm("dijkstra")
	require.NoError(t, err)
	assert.Equal(t, Dijkstra, alg)
	assert.Equal(t, path.Uninformed, alg.Mode())
	assert.Equal(t, path.Informed, AStar.Mode())

	_, err = ParseAlgorithm("bfs")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRunFindsCheapestPath(t *testing.T) {
	router := testRouter()
	agent := NewAgent(Request{Start: "A", End: "D", MaxRating: trail.Intermediate}, AStar)

	require.NoError(t, router.Run(agent))
	expected := path.Path{{Node: "A", Cost: 0}, {Node: "C", Cost: 3}, {Node: "D", Cost: 6}}
	assert.Equal(t, expected, agent.Result.Path)
	assert.Equal(t, []string{"T3"}, agent.Result.Trails)
	assert.Equal(t, 3, agent.Result.NodesVisited)
	assert.GreaterOrEqual(t, agent.Result.ElapsedMs(), 0.0)
}

func TestRunExcludesClosedTrails(t *testing.T) {
	router := testRouter()
	agent := NewAgent(Request{Start: "A", End: "D", MaxRating: trail.Intermediate, ExcludeClosed: true}, Dijkstra)

	require.NoError(t, router.Run(agent))
	assert.Equal(t, []string{"A", "B", "D"}, agent.Result.Path.Nodes())
	assert.Equal(t, 15.0, agent.Result.Path.Cost())
	assert.Equal(t, []string{"T1", "T2"}, agent.Result.Trails)
}

func TestRunWithoutPath(t *testing.T) {
	router := testRouter()
	agent := NewAgent(Request{Start: "A", End: "D", MaxRating: trail.Easy, ExcludeClosed: true}, AStar)

	require.NoError(t, router.Run(agent))
	assert.False(t, agent.Result.Path.Found())
	assert.Equal(t, []string{"Sorry, no path was found between A and D"}, agent.Result.Trails)
	assert.Equal(t, 1, agent.Result.NodesVisited)
}

func TestRunSameStartAndEnd(t *testing.T) {
	agent, err := testRouter().Route(Request{Start: "C", End: "C", MaxRating: trail.Easy}, AStar)
	require.NoError(t, err)
	assert.Equal(t, path.Path{{Node: "C", Cost: 0}}, agent.Result.Path)
	assert.Empty(t, agent.Result.Trails)
}

func TestRunRejectsInvalidRequests(t *testing.T) {
	router := testRouter()

	_, err := router.Route(Request{Start: "A", End: "X", MaxRating: trail.Easy}, AStar)
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = router.Route(Request{Start: "", End: "D", MaxRating: trail.Easy}, Dijkstra)
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = router.Route(Request{Start: "A", End: "D", MaxRating: trail.Easy}, Algorithm("greedy"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = router.Route(Request{Start: "A", End: "D", MaxRating: trail.Rating(9)}, AStar)
	assert.ErrorIs(t, err, trail.ErrUnknownRating)
}

func TestRunFailsOnInconsistentData(t *testing.T) {
	records := append(testRecords(), trail.Record{Start: "D", End: "Z", Length: 1, Rating: trail.Easy, Name: "T4"})
	router := NewRouter(testCoords(), records, nil)

	_, err := router.Route(Request{Start: "A", End: "D", MaxRating: trail.Easy}, AStar)
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	c, err := testRouter().Compare(Request{Start: "A", End: "D", MaxRating: trail.Intermediate})
	require.NoError(t, err)

	assert.True(t, c.Match)
	assert.True(t, c.CostMatch)
	assert.Equal(t, AStar, c.AStar.Algorithm)
	assert.Equal(t, Dijkstra, c.Dijkstra.Algorithm)
	assert.Equal(t, c.AStar.Result.Path, c.Dijkstra.Result.Path)
	assert.True(t, strings.HasPrefix(c.Verification(), "Verification using Dijkstra's algorithm confirms the path; nodes visited: 3, time: "))
}

func TestCompareWithoutPath(t *testing.T) {
	c, err := testRouter().Compare(Request{Start: "D", End: "A", MaxRating: trail.Expert})
	require.NoError(t, err)
	assert.True(t, c.Match)
	assert.True(t, c.CostMatch)
}

// trail lengths measured on the ellipsoid, the direct run is slightly longer than the
// straight line while the two short runs follow it exactly
func TestCompareOnGeodesicLengths(t *testing.T) {
	coords := map[string]geo.Point{
		"A": geo.MakePoint(45.0, 7.0),
		"M": geo.MakePoint(45.005, 7.0),
		"D": geo.MakePoint(45.01, 7.0),
	}
	records := []trail.Record{
		{Start: "A", End: "M", Length: 555.7, Rating: trail.Easy, Name: "Upper"},
		{Start: "M", End: "D", Length: 555.7, Rating: trail.Easy, Name: "Lower"},
		{Start: "A", End: "D", Length: 1112.0, Rating: trail.Easy, Name: "Traverse"},
	}
	router := NewRouter(coords, records, nil)

	c, err := router.Compare(Request{Start: "A", End: "D", MaxRating: trail.Easy})
	require.NoError(t, err)
	assert.True(t, c.Match)
	assert.True(t, c.CostMatch)
	assert.Equal(t, []string{"A", "M", "D"}, nodeIds(c.AStar.Result.Path))
	assert.InDelta(t, 1111.4, c.AStar.Result.Path[2].Cost, 1e-9)
	assert.Equal(t, []string{"Upper", "Lower"}, c.AStar.Result.Trails)
}

func nodeIds(p path.Path) []string {
	ids := make([]string, 0, len(p))
	for _, step := range p {
		ids = append(ids, step.Node)
	}
	return ids
}

func TestVerificationOfDifferentPaths(t *testing.T) {
	c := Comparison{
		AStar: &Agent{Algorithm: AStar, Result: Result{Path: path.Path{{Node: "A", Cost: 0}, {Node: "C", Cost: 3}}}},
		Dijkstra: &Agent{Algorithm: Dijkstra, Result: Result{
			Path:         path.Path{{Node: "A", Cost: 0}, {Node: "B", Cost: 3}},
			Trails:       []string{"T1", "T2"},
			NodesVisited: 4,
		}},
		CostMatch: true,
	}
	assert.Equal(t, "Dijkstra's algorithm found a different path ([A: 0, B: 3]) on trails T1 --> T2; nodes visited: 4, time: 0.000", c.Verification())
	assert.False(t, costsMatch(path.Path{{Node: "A", Cost: 0}}, path.Path{}))
}

func TestNodesAndCoordinates(t *testing.T) {
	router := testRouter()
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, router.Nodes())

	points := router.Coordinates(path.Path{{Node: "A"}, {Node: "D"}})
	assert.Equal(t, []geo.Point{geo.MakePoint(46.00004, 7.0), geo.MakePoint(46.0, 7.0)}, points)

	_, ok := router.Coordinate("X")
	assert.False(t, ok)
}

func TestExports(t *testing.T) {
	router := testRouter()
	agent, err := router.Route(Request{Start: "A", End: "D", MaxRating: trail.Easy}, AStar)
	require.NoError(t, err)

	fc := router.GeoJSON(agent)
	require.Len(t, fc.Features, 4)
	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, 3)
	assert.Equal(t, orb.Point{7.0, 46.00004}, line[0])
	assert.Equal(t, "D", fc.Features[3].Properties["node"])
	_, err = json.Marshal(fc)
	assert.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, router.WriteKML(&buf, agent))
	doc := buf.String()
	assert.Contains(t, doc, "<LineString>")
	assert.Contains(t, doc, "<name>A -&gt; D</name>")
	assert.Contains(t, doc, "46.00004")

	coords, _, err := polyline.DecodeCoords([]byte(router.Polyline(agent)))
	require.NoError(t, err)
	require.Len(t, coords, 3)
	assert.InDelta(t, 46.0, coords[2][0], 1e-5)
	assert.InDelta(t, 7.0, coords[2][1], 1e-5)
}

func TestExportsWithoutPath(t *testing.T) {
	router := testRouter()
	agent, err := router.Route(Request{Start: "D", End: "A", MaxRating: trail.Easy}, Dijkstra)
	require.NoError(t, err)

	assert.Empty(t, router.GeoJSON(agent).Features)
	assert.Equal(t, "", router.Polyline(agent))

	var buf bytes.Buffer
	require.NoError(t, router.WriteKML(&buf, agent))
	assert.NotContains(t, buf.String(), "<LineString>")
	assert.Contains(t, buf.String(), "Sorry, no path was found between D and A")
}
