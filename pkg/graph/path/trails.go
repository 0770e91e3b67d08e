package path

import (
	"fmt"
	"strings"

	"github.com/natevvv/ski-routing/pkg/graph"
)

// NoPathMessage is the single entry of the trail list when no path exists between origin and destination
func NoPathMessage(origin, destination graph.NodeId) string {
	return fmt.Sprintf("Sorry, no path was found between %v and %v", origin, destination)
}

// ReduceToTrails converts the path into the list of trails to follow.
// Consecutive segments on the same trail are merged into one entry.
// An empty path yields the no-path message, a path of one node yields an empty list.
func ReduceToTrails(p Path, g graph.Graph, origin, destination graph.NodeId) []string {
	if len(p) == 0 {
		return []string{NoPathMessage(origin, destination)}
	}

	trails := make([]string, 0)
	for i := 0; i < len(p)-1; i++ {
		arc, ok := g.GetArc(p[i].Node, p[i+1].Node)
		if !ok {
			// the path was not computed on this graph
			panic(fmt.Sprintf("no arc %v -> %v in graph", p[i].Node, p[i+1].Node))
		}
		if len(trails) == 0 || arc.Name != trails[len(trails)-1] {
			trails = append(trails, arc.Name)
		}
	}
	return trails
}

// FormatTrails joins the trails into one readable line
func FormatTrails(trails []string) string {
	return strings.Join(trails, " --> ")
}
