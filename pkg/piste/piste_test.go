package piste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/trail"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		tags   map[string]string
		kind   Kind
		rating trail.Rating
		ok     bool
	}{
		{map[string]string{"piste:type": "downhill", "piste:difficulty": "novice"}, Downhill, trail.Easy, true},
		{map[string]string{"piste:type": "downhill", "piste:difficulty": "easy"}, Downhill, trail.Easy, true},
		{map[string]string{"piste:type": "downhill", "piste:difficulty": "intermediate"}, Downhill, trail.Intermediate, true},
		{map[string]string{"piste:type": "downhill", "piste:difficulty": "Advanced"}, Downhill, trail.Advanced, true},
		{map[string]string{"piste:type": "downhill", "piste:difficulty": "freeride"}, Downhill, trail.Expert, true},
		{map[string]string{"piste:type": "downhill", "piste:difficulty": "extreme"}, Downhill, trail.Expert, true},
		{map[string]string{"piste:type": "downhill"}, Downhill, trail.Intermediate, true},
		{map[string]string{"aerialway": "chair_lift"}, Lift, trail.Lift, true},
		{map[string]string{"aerialway": "pylon"}, Unknown, trail.Lift, false},
		{map[string]string{"piste:type": "nordic"}, Unknown, trail.Lift, false},
		{map[string]string{"highway": "track"}, Unknown, trail.Lift, false},
	}
	for _, c := range cases {
		kind, rating, ok := Classify(c.tags)
		assert.Equal(t, c.ok, ok, c.tags)
		assert.Equal(t, c.kind, kind, c.tags)
		assert.Equal(t, c.rating, rating, c.tags)
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Black Forest", Name(1, Downhill, map[string]string{"piste:name": "Black Forest", "name": "Other"}))
	assert.Equal(t, "Summit Express", Name(2, Lift, map[string]string{"name": " Summit Express "}))
	assert.Equal(t, "lift 3", Name(3, Lift, map[string]string{}))
	assert.Equal(t, "downhill 4", Name(4, Downhill, nil))
}

func TestNewWay(t *testing.T) {
	way, ok := NewWay(7, map[string]string{"piste:type": "downhill", "piste:difficulty": "easy", "name": "Lower Bowl"}, []int64{1, 2})
	require.True(t, ok)
	assert.Equal(t, &Way{ID: 7, Kind: Downhill, Rating: trail.Easy, Name: "Lower Bowl", NodeIDs: []int64{1, 2}}, way)

	_, ok = NewWay(8, map[string]string{"building": "yes"}, []int64{1, 2})
	assert.False(t, ok)
}

func TestConvert(t *testing.T) {
	coords := map[int64]geo.Point{
		1: geo.MakePoint(46.0, 7.0),
		2: geo.MakePoint(46.001, 7.0),
		3: geo.MakePoint(46.002, 7.0),
	}
	ways := []*Way{
		{ID: 10, Kind: Lift, Rating: trail.Lift, Name: "Chair", NodeIDs: []int64{1, 3}},
		{ID: 11, Kind: Downhill, Rating: trail.Easy, Name: "Run", NodeIDs: []int64{3, 2, 1, 99}},
		{ID: 12, Kind: Downhill, Rating: trail.Easy, Name: "Stub", NodeIDs: []int64{2}},
	}

	c := NewConverter(ways, coords)
	c.Convert()

	records := c.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "1", records[0].Start)
	assert.Equal(t, "3", records[0].End)
	assert.Equal(t, trail.Lift, records[0].Rating)
	assert.InDelta(t, 222.303, records[0].Length, 0.01)
	assert.Equal(t, trail.Record{Start: "3", End: "2", Length: records[1].Length, Rating: trail.Easy, Name: "Run"}, records[1])
	assert.Equal(t, "1", records[2].End)

	assert.Len(t, c.Nodes(), 3)
	assert.Equal(t, 1, c.SkippedWays())
	assert.Equal(t, 1, c.SkippedPairs())
}
