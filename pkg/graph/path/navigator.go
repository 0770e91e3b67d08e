package path

import "github.com/natevvv/ski-routing/pkg/graph"

type Navigator interface {
	ComputeShortestPath(origin, destination graph.NodeId) float64 // Compute the shortest path from the origin to the destination, returns -1 if there is none
	GetPath(origin, destination graph.NodeId) Path               // Get the path of a previous computation, including the cost at each node
	GetSearchSpace() []graph.NodeId                              // Returns the nodes which were settled in the previous computation, in settle order
	GetNodesExpanded() int                                       // Returns the number of settled (expanded) nodes
	GetPqPops() int                                              // Returns the amount of priority queue/heap pops which were performed during the search
	GetPqUpdates() int                                           // Get the number of pq pushes and updates
	GetGraph() graph.Graph                                       // Get the used graph
}
