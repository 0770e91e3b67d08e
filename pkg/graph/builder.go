package graph

import (
	"errors"
	"fmt"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/trail"
)

var (
	ErrUnknownNode    = errors.New("trail references unknown node")
	ErrNegativeLength = errors.New("trail has negative length")
)

// UnknownNodeError identifies the trail record which references a node without coordinate
type UnknownNodeError struct {
	Record trail.Record
	Node   NodeId
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("%v: %q in trail %v", ErrUnknownNode, e.Node, e.Record)
}

func (e *UnknownNodeError) Unwrap() error { return ErrUnknownNode }

// Eligible reports if the record passes the difficulty ceiling and is not excluded by name
func Eligible(r trail.Record, ceiling trail.Rating, excluded map[string]struct{}) bool {
	if !r.Rating.AtMost(ceiling) {
		return false
	}
	_, closed := excluded[r.Name]
	return !closed
}

// Build creates the trail graph from the given records.
// Only records up to the ceiling rating and whose name is not in excluded are used.
// Several records for the same pair of nodes collapse to the shortest one.
func Build(records []trail.Record, ceiling trail.Rating, excluded map[string]struct{}) (*AdjacencyListGraph, error) {
	return build(nil, records, ceiling, excluded)
}

// BuildWithNodes works like Build, but additionally registers the coordinates of all nodes.
// It fails if an eligible record references a node which is not contained in coords.
func BuildWithNodes(coords map[NodeId]geo.Point, records []trail.Record, ceiling trail.Rating, excluded map[string]struct{}) (*AdjacencyListGraph, error) {
	if coords == nil {
		coords = make(map[NodeId]geo.Point)
	}
	return build(coords, records, ceiling, excluded)
}

func build(coords map[NodeId]geo.Point, records []trail.Record, ceiling trail.Rating, excluded map[string]struct{}) (*AdjacencyListGraph, error) {
	alg := NewAdjacencyListGraph()
	for id, p := range coords {
		alg.AddNode(id, p)
	}

	for _, r := range records {
		if !Eligible(r, ceiling, excluded) {
			continue
		}
		if r.Length < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeLength, r)
		}
		if coords != nil {
			for _, id := range []NodeId{r.Start, r.End} {
				if _, ok := coords[id]; !ok {
					return nil, &UnknownNodeError{Record: r, Node: id}
				}
			}
		}
		alg.AddArc(r.Start, r.End, r.Length, r.Name)
	}
	return alg, nil
}
