package routing

import (
	"fmt"
	"log"
	"math"

	"github.com/natevvv/ski-routing/pkg/graph/path"
)

// costTolerance is the allowed difference of two optimal path costs
const costTolerance = 1e-9

// Comparison is the outcome of running the same request with A* and Dijkstra
type Comparison struct {
	AStar    *Agent
	Dijkstra *Agent
	// Match is set if both searches returned the same nodes with the same costs
	Match bool
	// CostMatch is set if both paths have the same total cost
	CostMatch bool
}

// Compare runs the request with A* and then with Dijkstra and compares both paths.
// Different paths are reported in the comparison and logged, they are no error.
func (r *Router) Compare(req Request) (Comparison, error) {
	astar, err := r.Route(req, AStar)
	if err != nil {
		return Comparison{}, err
	}
	dijkstra, err := r.Route(req, Dijkstra)
	if err != nil {
		return Comparison{}, err
	}

	c := Comparison{
		AStar:     astar,
		Dijkstra:  dijkstra,
		Match:     astar.Result.Path.Equal(dijkstra.Result.Path),
		CostMatch: costsMatch(astar.Result.Path, dijkstra.Result.Path),
	}
	if !c.Match {
		log.Printf("WARN: paths differ for %v -> %v: a-star %v, dijkstra %v\n", req.Start, req.End, astar.Result.Path, dijkstra.Result.Path)
		comparisonMismatches.WithLabelValues(fmt.Sprint(c.CostMatch)).Inc()
	}
	return c, nil
}

func costsMatch(a, b path.Path) bool {
	if a.Found() != b.Found() {
		return false
	}
	return math.Abs(a.Cost()-b.Cost()) <= costTolerance
}

// Verification describes the result of the comparison in one line
func (c Comparison) Verification() string {
	d := c.Dijkstra.Result
	if c.Match {
		return fmt.Sprintf("Verification using Dijkstra's algorithm confirms the path; nodes visited: %v, time: %.3f", d.NodesVisited, d.ElapsedMs())
	}
	return fmt.Sprintf("Dijkstra's algorithm found a different path (%v) on trails %v; nodes visited: %v, time: %.3f", d.Path, path.FormatTrails(d.Trails), d.NodesVisited, d.ElapsedMs())
}
