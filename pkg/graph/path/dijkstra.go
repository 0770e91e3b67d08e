package path

import (
	"container/heap"

	"github.com/natevvv/ski-routing/pkg/graph"
	"github.com/natevvv/ski-routing/pkg/queue"
	"github.com/natevvv/ski-routing/pkg/slice"
)

// Dijkstra is a textbook Dijkstra with decrease-key.
// It serves as reference to validate the results of BestFirstSearch.
type Dijkstra struct {
	g             graph.Graph
	dijkstraItems map[graph.NodeId]*queue.Item
	settled       []graph.NodeId
	origin        graph.NodeId
	destination   graph.NodeId
	pqPops        int
	pqUpdates     int
}

func NewDijkstra(g graph.Graph) *Dijkstra {
	return &Dijkstra{g: g}
}

func (d *Dijkstra) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	d.origin = origin
	d.destination = destination
	d.dijkstraItems = make(map[graph.NodeId]*queue.Item)
	d.settled = make([]graph.NodeId, 0)
	originItem := queue.NewQueueItem(origin, 0, "")
	d.dijkstraItems[origin] = originItem

	pq := make(queue.Queue, 0)
	heap.Init(&pq)
	heap.Push(&pq, d.dijkstraItems[origin])

	d.pqPops = 0
	d.pqUpdates = 0

	for len(pq) > 0 {
		currentPqItem := heap.Pop(&pq).(*queue.Item)
		currentNodeId := currentPqItem.ItemId
		d.pqPops++
		d.settled = append(d.settled, currentNodeId)

		if currentNodeId == destination {
			break
		}

		for _, arc := range d.g.GetArcsFrom(currentNodeId) {
			successor := arc.Destination()

			if d.dijkstraItems[successor] == nil {
				newPriority := currentPqItem.Priority + arc.Cost()
				pqItem := queue.NewQueueItem(successor, newPriority, currentNodeId)
				d.dijkstraItems[successor] = pqItem
				heap.Push(&pq, pqItem)
				d.pqUpdates++
			} else if successorItem := d.dijkstraItems[successor]; successorItem.Index >= 0 {
				// only nodes which are still in the queue can be improved
				if updatedDistance := currentPqItem.Priority + arc.Cost(); updatedDistance < successorItem.Priority {
					pq.Update(successorItem, updatedDistance)
					d.pqUpdates++
					successorItem.Predecessor = currentNodeId
				}
			}
		}
	}

	item := d.dijkstraItems[destination]
	if item == nil || item.Index >= 0 {
		// by default a non-existing path has length -1
		return -1
	}
	return item.Priority
}

func (d *Dijkstra) GetPath(origin, destination graph.NodeId) Path {
	path := make(Path, 0) // by default, a non-existing path is an empty slice
	if origin != d.origin || destination != d.destination {
		return path
	}
	item := d.dijkstraItems[destination]
	if item == nil || item.Index >= 0 {
		return path
	}
	for nodeId := destination; ; {
		current := d.dijkstraItems[nodeId]
		path = append(path, Step{Node: nodeId, Cost: current.Priority})
		if nodeId == origin {
			break
		}
		nodeId = current.Predecessor
	}
	slice.ReverseInPlace(path)
	return path
}

func (d *Dijkstra) GetSearchSpace() []graph.NodeId { return d.settled }
func (d *Dijkstra) GetNodesExpanded() int          { return len(d.settled) }
func (d *Dijkstra) GetPqPops() int                 { return d.pqPops }
func (d *Dijkstra) GetPqUpdates() int              { return d.pqUpdates }
func (d *Dijkstra) GetGraph() graph.Graph          { return d.g }
