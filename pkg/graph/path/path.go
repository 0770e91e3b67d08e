package path

import (
	"fmt"
	"strings"

	"github.com/natevvv/ski-routing/pkg/graph"
	"github.com/natevvv/ski-routing/pkg/slice"
)

// Step is a node on a path together with the cost to reach it from the origin
type Step struct {
	Node graph.NodeId `json:"node"`
	Cost float64      `json:"cost"`
}

// Path lists the steps from origin to destination. An empty path means that no path exists
type Path []Step

// Cost of the whole path, 0 for empty paths
func (p Path) Cost() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Cost
}

func (p Path) Found() bool { return len(p) > 0 }

func (p Path) Nodes() []graph.NodeId {
	nodes := make([]graph.NodeId, len(p))
	for i, step := range p {
		nodes[i] = step.Node
	}
	return nodes
}

// Equal reports whether both paths visit the same nodes with the same costs
func (p Path) Equal(other Path) bool {
	return slice.Compare(p, other) == 0
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, step := range p {
		parts[i] = fmt.Sprintf("%v: %v", step.Node, step.Cost)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
