package path

import (
	"errors"
	"fmt"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/graph"
)

var (
	ErrUnknownGoal       = errors.New("destination has no coordinate")
	ErrMissingCoordinate = errors.New("node has no coordinate")
)

// Heuristic maps every node to the estimated remaining cost to the destination
type Heuristic map[graph.NodeId]float64

type HeuristicMode int

const (
	Informed   HeuristicMode = iota // geodesic distance to the destination (A*)
	Uninformed                      // zero everywhere (uniform cost search)
)

func (m HeuristicMode) String() string {
	switch m {
	case Informed:
		return "informed"
	case Uninformed:
		return "uninformed"
	default:
		return fmt.Sprintf("HeuristicMode(%d)", int(m))
	}
}

// BuildHeuristic computes the heuristic table for all given nodes towards destination.
// In informed mode every node needs a coordinate, distance defaults to the geodesic distance.
func BuildHeuristic(nodes []graph.NodeId, coords map[graph.NodeId]geo.Point, destination graph.NodeId, mode HeuristicMode, distance geo.DistanceFunc) (Heuristic, error) {
	heuristic := make(Heuristic, len(nodes))

	if mode == Uninformed {
		for _, node := range nodes {
			heuristic[node] = 0
		}
		return heuristic, nil
	}
	if mode != Informed {
		return nil, fmt.Errorf("unsupported heuristic mode %v", mode)
	}

	if distance == nil {
		distance = geo.Distance
	}
	target, ok := coords[destination]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGoal, destination)
	}
	for _, node := range nodes {
		if node == destination {
			heuristic[node] = 0
			continue
		}
		p, ok := coords[node]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingCoordinate, node)
		}
		heuristic[node] = distance(p, target)
	}
	return heuristic, nil
}
