package graph

import (
	"fmt"
	"strings"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
)

type NodeId = string

type Graph interface {
	GetNode(id NodeId) *geo.Point
	GetNodes() []NodeId
	GetArcsFrom(id NodeId) []Arc
	GetArc(from, to NodeId) (Arc, bool)
	NodeCount() int
	ArcCount() int
	AsString() string
}

type DynamicGraph interface {
	Graph
	AddNode(id NodeId, p geo.Point)
	AddArc(from, to NodeId, length float64, name string) bool
}

func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of nodes and number of edges
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	sb.WriteString("#Nodes\n")
	// list all nodes structured as "id lat lon", or only "id" if the coordinate is unknown
	for _, id := range g.GetNodes() {
		if node := g.GetNode(id); node != nil {
			sb.WriteString(fmt.Sprintf("%q %v %v\n", id, node.Lat(), node.Lon()))
		} else {
			sb.WriteString(fmt.Sprintf("%q\n", id))
		}
	}

	sb.WriteString("#Edges\n")
	// list all edges structured as "fromId targetId length name"
	for _, id := range g.GetNodes() {
		for _, arc := range g.GetArcsFrom(id) {
			sb.WriteString(fmt.Sprintf("%q %q %v %q\n", id, arc.Destination(), arc.Cost(), arc.Name))
		}
	}
	return sb.String()
}
