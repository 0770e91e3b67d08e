package path

import (
	"fmt"

	"github.com/natevvv/ski-routing/pkg/graph"
)

// implements queue.Priorizable
type SearchItem struct {
	nodeId    graph.NodeId // node id of this item in the graph
	parent    *SearchItem  // item through which this node was reached, nil for the origin
	distance  float64      // distance to origin of this node (g)
	heuristic float64      // estimated distance from node to destination (h)
	sequence  int          // insertion number, breaks ties between equal priorities
	index     int          // internal usage
}

func NewSearchItem(nodeId graph.NodeId, parent *SearchItem, distance, heuristic float64, sequence int) *SearchItem {
	return &SearchItem{nodeId: nodeId, parent: parent, distance: distance, heuristic: heuristic, sequence: sequence, index: -1}
}

func (item *SearchItem) NodeId() graph.NodeId { return item.nodeId }
func (item *SearchItem) Distance() float64    { return item.distance }
func (item *SearchItem) Heuristic() float64   { return item.heuristic }
func (item *SearchItem) Priority() float64    { return item.distance + item.heuristic }
func (item *SearchItem) Sequence() int        { return item.sequence }
func (item *SearchItem) Index() int           { return item.index }
func (item *SearchItem) SetIndex(index int)   { item.index = index }
func (item *SearchItem) String() string {
	return fmt.Sprintf("%v: %v, %v\n", item.index, item.nodeId, item.Priority())
}
