package piste

import (
	"strconv"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/trail"
)

// Converter turns piste ways into trail records.
// Every pair of consecutive way nodes becomes one record in way direction.
type Converter struct {
	ways   []*Way
	coords map[int64]geo.Point

	records      []trail.Record
	nodes        map[string]geo.Point
	skippedWays  int
	skippedPairs int
}

func NewConverter(ways []*Way, coords map[int64]geo.Point) *Converter {
	return &Converter{
		ways:   ways,
		coords: coords,
	}
}

func NodeName(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (c *Converter) Convert() {
	c.records = make([]trail.Record, 0)
	c.nodes = make(map[string]geo.Point)
	c.skippedWays = 0
	c.skippedPairs = 0

	for _, way := range c.ways {
		if len(way.NodeIDs) < 2 {
			c.skippedWays++
			continue
		}

		for i := 0; i < len(way.NodeIDs)-1; i++ {
			from, to := way.NodeIDs[i], way.NodeIDs[i+1]
			fromPoint, ok1 := c.coords[from]
			toPoint, ok2 := c.coords[to]
			if !ok1 || !ok2 || from == to {
				c.skippedPairs++
				continue
			}

			start, end := NodeName(from), NodeName(to)
			c.nodes[start] = fromPoint
			c.nodes[end] = toPoint
			c.records = append(c.records, trail.Record{
				Start:  start,
				End:    end,
				Length: geo.Distance(fromPoint, toPoint),
				Rating: way.Rating,
				Name:   way.Name,
			})
		}
	}
}

func (c *Converter) Records() []trail.Record {
	return c.records
}

// Nodes used by the records with their coordinate
func (c *Converter) Nodes() map[string]geo.Point {
	return c.nodes
}

func (c *Converter) SkippedWays() int {
	return c.skippedWays
}

// SkippedPairs counts consecutive node pairs without coordinates
func (c *Converter) SkippedPairs() int {
	return c.skippedPairs
}
