package graph

import (
	"sort"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
)

// Implementation for dynamic graphs.
// The arcs of a node keep the order in which they were first added, a later shorter arc
// replaces the existing one in place.
type AdjacencyListGraph struct {
	coords   map[NodeId]geo.Point      // coordinates of the nodes, if known
	nodes    map[NodeId]struct{}       // all nodes, with or without coordinate
	edges    map[NodeId][]Arc          // the arcs of the graph, by source node
	arcIndex map[NodeId]map[NodeId]int // position of the arc from -> to in edges[from]
	arcCount int                       // the number of arcs in the graph
}

func NewAdjacencyListGraph() *AdjacencyListGraph {
	return &AdjacencyListGraph{
		coords:   make(map[NodeId]geo.Point),
		nodes:    make(map[NodeId]struct{}),
		edges:    make(map[NodeId][]Arc),
		arcIndex: make(map[NodeId]map[NodeId]int),
	}
}

// Return the coordinate for the given id, or nil if it is not known
func (alg *AdjacencyListGraph) GetNode(id NodeId) *geo.Point {
	p, ok := alg.coords[id]
	if !ok {
		return nil
	}
	return &p
}

// Return all node ids of the graph in ascending order
func (alg *AdjacencyListGraph) GetNodes() []NodeId {
	ids := make([]NodeId, 0, len(alg.nodes))
	for id := range alg.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get the arcs for the given node
func (alg *AdjacencyListGraph) GetArcsFrom(id NodeId) []Arc {
	return alg.edges[id]
}

// Get the arc from -> to, if it exists
func (alg *AdjacencyListGraph) GetArc(from, to NodeId) (Arc, bool) {
	i, ok := alg.arcIndex[from][to]
	if !ok {
		return Arc{}, false
	}
	return alg.edges[from][i], true
}

func (alg *AdjacencyListGraph) HasNode(id NodeId) bool {
	_, ok := alg.nodes[id]
	return ok
}

// Return the number of total nodes
func (alg *AdjacencyListGraph) NodeCount() int {
	return len(alg.nodes)
}

// Return the number of total arcs
func (alg *AdjacencyListGraph) ArcCount() int {
	return alg.arcCount
}

// Return a human readable string of the graph
func (alg *AdjacencyListGraph) AsString() string {
	return GraphAsString(alg)
}

// Add a node with its coordinate. Adding an existing node updates the coordinate
func (alg *AdjacencyListGraph) AddNode(id NodeId, p geo.Point) {
	alg.nodes[id] = struct{}{}
	alg.coords[id] = p
}

// Add an arc to the graph, going from source to target with the given length.
// If an arc between both nodes already exists, it is only replaced if the new one is strictly shorter.
// Returns true if the graph changed
func (alg *AdjacencyListGraph) AddArc(from, to NodeId, length float64, name string) bool {
	alg.nodes[from] = struct{}{}
	alg.nodes[to] = struct{}{}

	targets, ok := alg.arcIndex[from]
	if !ok {
		targets = make(map[NodeId]int)
		alg.arcIndex[from] = targets
	}

	if i, exists := targets[to]; exists {
		arc := &alg.edges[from][i]
		if length < arc.Length {
			arc.Length = length
			arc.Name = name
			return true
		}
		return false
	}

	targets[to] = len(alg.edges[from])
	alg.edges[from] = append(alg.edges[from], MakeArc(to, length, name))
	alg.arcCount++
	return true
}
