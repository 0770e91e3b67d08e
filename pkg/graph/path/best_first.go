package path

import (
	"log"

	"github.com/natevvv/ski-routing/pkg/graph"
	"github.com/natevvv/ski-routing/pkg/queue"
	"github.com/natevvv/ski-routing/pkg/slice"
)

type SearchKPIs struct {
	pqPops        int // store the amount of Pops which were performed on the priority queue for the computed search
	pqUpdates     int // store each push to the priority queue
	skippedPushes int // children which were not pushed since the frontier already held a better or equal entry
	stalePops     int // popped entries whose node was already expanded
	nodesExpanded int // number of expanded (settled) nodes
}

// Reset the kpi
func (kpi *SearchKPIs) Reset() {
	kpi.pqPops = 0
	kpi.pqUpdates = 0
	kpi.skippedPushes = 0
	kpi.stalePops = 0
	kpi.nodesExpanded = 0
}

// BestFirstSearch is a generic best-first graph search.
// The heuristic table decides the flavour: geodesic distances to the destination make it A*,
// an all-zero table makes it a uniform cost search (Dijkstra).
// Implements the Navigator Interface.
type BestFirstSearch struct {
	g         graph.Graph
	heuristic Heuristic
	minHeap   *queue.MinHeap[*SearchItem] // the frontier, ordered by f and insertion order

	origin      graph.NodeId // the origin of the current search
	destination graph.NodeId // the destination of the current search

	explored     map[graph.NodeId]*SearchItem // expanded nodes with the item they were expanded with
	frontierBest map[graph.NodeId]float64     // lowest priority of all frontier entries per node
	searchSpace  []graph.NodeId               // expanded nodes in expansion order
	goalItem     *SearchItem                  // item of the destination, nil if it was not reached
	nextSequence int                          // sequence number for the next pushed item
	searchKPIs   SearchKPIs
	debugLevel   int // debug level for logging purpose
}

// Create a new search on graph g guided by the given heuristic
func NewBestFirstSearch(g graph.Graph, heuristic Heuristic) *BestFirstSearch {
	return &BestFirstSearch{g: g, heuristic: heuristic}
}

// Search runs a single best-first search and returns the path and the number of expanded nodes
func Search(g graph.Graph, heuristic Heuristic, origin, destination graph.NodeId) (Path, int) {
	s := NewBestFirstSearch(g, heuristic)
	s.ComputeShortestPath(origin, destination)
	return s.GetPath(origin, destination), s.GetNodesExpanded()
}

// Compute the shortest path from the origin to the destination.
// It returns the cost of the found path, or -1 if the destination is unreachable.
func (s *BestFirstSearch) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	if s.debugLevel >= 1 {
		log.Printf("New search: %v -> %v\n", origin, destination)
	}

	s.initializeSearch(origin, destination)

	for s.minHeap.Len() > 0 {
		currentNode := s.minHeap.Pop()
		s.searchKPIs.pqPops++

		if _, expanded := s.explored[currentNode.nodeId]; expanded {
			// outdated frontier entry, the node was already expanded with a lower priority
			s.searchKPIs.stalePops++
			if s.debugLevel >= 2 {
				log.Printf("Dropping stale entry for %v, distance %v\n", currentNode.nodeId, currentNode.distance)
			}
			continue
		}

		s.settleNode(currentNode)
		if s.debugLevel >= 2 {
			log.Printf("Expanding node %v, distance %v, priority %v\n", currentNode.nodeId, currentNode.distance, currentNode.Priority())
		}

		if currentNode.nodeId == destination {
			s.goalItem = currentNode
			if s.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with distance %v, expanded %v nodes\n", origin, destination, currentNode.distance, s.searchKPIs.nodesExpanded)
			}
			return currentNode.distance
		}

		s.expand(currentNode)
	}

	if s.debugLevel >= 1 {
		log.Printf("Finished search, no path found\n")
	}
	return -1
}

// Get the path of the previous computation, from origin to destination.
// It is empty if no path was found
func (s *BestFirstSearch) GetPath(origin, destination graph.NodeId) Path {
	if s.goalItem == nil || origin != s.origin || destination != s.destination {
		// no path found
		return make(Path, 0)
	}

	path := make(Path, 0)
	for item := s.goalItem; item != nil; item = item.parent {
		path = append(path, Step{Node: item.nodeId, Cost: item.distance})
	}
	// reverse path (to create the correct direction)
	slice.ReverseInPlace(path)
	return path
}

// Returns the expanded nodes of the previous computation, in the order they were expanded
func (s *BestFirstSearch) GetSearchSpace() []graph.NodeId {
	return s.searchSpace
}

// Initialize a new search
// This resets the frontier and the explored nodes (and all other leftovers of a previous search)
func (s *BestFirstSearch) initializeSearch(origin, destination graph.NodeId) {
	s.origin = origin
	s.destination = destination
	s.explored = make(map[graph.NodeId]*SearchItem)
	s.frontierBest = make(map[graph.NodeId]float64)
	s.searchSpace = make([]graph.NodeId, 0)
	s.goalItem = nil
	s.nextSequence = 0
	s.searchKPIs.Reset()
	s.minHeap = queue.NewMinHeap[*SearchItem](nil)

	s.push(NewSearchItem(origin, nil, 0, s.heuristicValue(origin), s.nextSequence))
}

// Settle the given node item: it counts as expanded and is never expanded again
func (s *BestFirstSearch) settleNode(node *SearchItem) {
	s.explored[node.nodeId] = node
	delete(s.frontierBest, node.nodeId)
	s.searchSpace = append(s.searchSpace, node.nodeId)
	s.searchKPIs.nodesExpanded++
}

// Generate the children of the given node.
// A child is only added if the frontier does not hold an entry for the same node with a lower or equal priority.
// Worse entries already in the frontier are kept, they get dropped once they are popped after the node was expanded.
func (s *BestFirstSearch) expand(node *SearchItem) {
	for _, arc := range s.g.GetArcsFrom(node.nodeId) {
		successor := arc.Destination()
		if _, expanded := s.explored[successor]; expanded {
			continue
		}

		child := NewSearchItem(successor, node, node.distance+arc.Cost(), s.heuristicValue(successor), s.nextSequence)
		if best, inFrontier := s.frontierBest[successor]; inFrontier && best <= child.Priority() {
			s.searchKPIs.skippedPushes++
			continue
		}
		s.push(child)
	}
}

func (s *BestFirstSearch) push(item *SearchItem) {
	s.minHeap.Push(item)
	s.frontierBest[item.nodeId] = item.Priority()
	s.nextSequence++
	s.searchKPIs.pqUpdates++
}

// heuristic value of the node. Nodes missing in the table are estimated with 0
func (s *BestFirstSearch) heuristicValue(id graph.NodeId) float64 {
	return s.heuristic[id]
}

// Get the number of expanded nodes
func (s *BestFirstSearch) GetNodesExpanded() int { return s.searchKPIs.nodesExpanded }

// Get the number of pq pops
func (s *BestFirstSearch) GetPqPops() int { return s.searchKPIs.pqPops }

// Get the number of pushes into the frontier
func (s *BestFirstSearch) GetPqUpdates() int { return s.searchKPIs.pqUpdates }

// Get the number of children which were not added to the frontier
func (s *BestFirstSearch) GetSkippedPushes() int { return s.searchKPIs.skippedPushes }

// Get the number of popped frontier entries whose node was already expanded
func (s *BestFirstSearch) GetStalePops() int { return s.searchKPIs.stalePops }

// Get the used graph
func (s *BestFirstSearch) GetGraph() graph.Graph { return s.g }

// Set the debug level to show different debug messages.
// If it is 0, no debug messages are printed
func (s *BestFirstSearch) SetDebugLevel(level int) {
	s.debugLevel = level
}
