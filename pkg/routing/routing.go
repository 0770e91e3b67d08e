package routing

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/graph"
	"github.com/natevvv/ski-routing/pkg/graph/path"
	"github.com/natevvv/ski-routing/pkg/repository"
	"github.com/natevvv/ski-routing/pkg/slice"
	"github.com/natevvv/ski-routing/pkg/trail"
)

var (
	ErrUnknownNode      = errors.New("unknown node")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Algorithm selects how the search is guided
type Algorithm string

const (
	AStar    Algorithm = "a-star"
	Dijkstra Algorithm = "dijkstra"
)

func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case AStar, "astar":
		return AStar, nil
	case Dijkstra:
		return Dijkstra, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Mode is the heuristic the algorithm searches with
func (a Algorithm) Mode() path.HeuristicMode {
	if a == Dijkstra {
		return path.Uninformed
	}
	return path.Informed
}

// Request describes which route is searched
type Request struct {
	Start         string       `json:"start"`
	End           string       `json:"end"`
	MaxRating     trail.Rating `json:"maxRating"`
	ExcludeClosed bool         `json:"excludeClosed"`
}

// Result holds what a single search computed
type Result struct {
	Path         path.Path     `json:"path"`
	Trails       []string      `json:"trails"`
	NodesVisited int           `json:"nodesVisited"`
	Elapsed      time.Duration `json:"-"`
}

// ElapsedMs is the runtime of the search in milliseconds
func (r Result) ElapsedMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Agent bundles a request and the algorithm to run it with. The result is filled by Router.Run
type Agent struct {
	Request   Request
	Algorithm Algorithm
	Result    Result
}

func NewAgent(req Request, algorithm Algorithm) *Agent {
	return &Agent{Request: req, Algorithm: algorithm}
}

// Router computes routes on the trail data. The data is shared and never modified.
type Router struct {
	coords     map[string]geo.Point
	records    []trail.Record
	closed     []string
	distance   geo.DistanceFunc
	debugLevel int
}

func NewRouter(coords map[string]geo.Point, records []trail.Record, closed []string) *Router {
	return &Router{coords: coords, records: records, closed: closed, distance: geo.Distance}
}

// NewRouterFromData creates a router on loaded repository data
func NewRouterFromData(data *repository.Data) *Router {
	return NewRouter(data.Coordinates, data.Records, data.Closed)
}

// Set the distance function used by the informed heuristic
func (r *Router) SetDistance(distance geo.DistanceFunc) {
	r.distance = distance
}

// Set the debug level of the router and its searches
func (r *Router) SetDebugLevel(level int) {
	r.debugLevel = level
}

// Nodes returns all known node ids, sorted
func (r *Router) Nodes() []string {
	nodes := make([]string, 0, len(r.coords))
	for id := range r.coords {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)
	return nodes
}

// Coordinate of the given node
func (r *Router) Coordinate(id string) (geo.Point, bool) {
	p, ok := r.coords[id]
	return p, ok
}

// Coordinates of all nodes on the path, in path order
func (r *Router) Coordinates(p path.Path) []geo.Point {
	points := make([]geo.Point, 0, len(p))
	for _, step := range p {
		if point, ok := r.coords[step.Node]; ok {
			points = append(points, point)
		}
	}
	return points
}

// Closed returns the names of the closed trails
func (r *Router) Closed() []string { return r.closed }

func (r *Router) validate(req Request, algorithm Algorithm) error {
	if algorithm != AStar && algorithm != Dijkstra {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	for _, id := range []string{req.Start, req.End} {
		if _, ok := r.coords[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	if !req.MaxRating.Valid() {
		return fmt.Errorf("%w: %d", trail.ErrUnknownRating, int(req.MaxRating))
	}
	return nil
}

// Run computes the route of the agent and stores it in the agent's result.
// The elapsed time covers building the graph and the heuristic, the search and the trail reduction.
// Not finding a path is no error, the result then contains an empty path and the no-path message.
func (r *Router) Run(agent *Agent) error {
	req := agent.Request
	if err := r.validate(req, agent.Algorithm); err != nil {
		return err
	}

	start := time.Now()

	excluded := make(map[string]struct{})
	if req.ExcludeClosed {
		excluded = slice.Set(r.closed)
	}
	g, err := graph.BuildWithNodes(r.coords, r.records, req.MaxRating, excluded)
	if err != nil {
		return err
	}

	heuristic, err := path.BuildHeuristic(g.GetNodes(), r.coords, req.End, agent.Algorithm.Mode(), r.distance)
	if err != nil {
		return err
	}

	search := path.NewBestFirstSearch(g, heuristic)
	search.SetDebugLevel(r.debugLevel)
	search.ComputeShortestPath(req.Start, req.End)
	p := search.GetPath(req.Start, req.End)
	trails := path.ReduceToTrails(p, g, req.Start, req.End)

	agent.Result = Result{
		Path:         p,
		Trails:       trails,
		NodesVisited: search.GetNodesExpanded(),
		Elapsed:      time.Since(start),
	}
	observeSearch(agent)

	if r.debugLevel >= 1 {
		log.Printf("%v %v -> %v: %v, %v nodes visited, %.3f ms\n", agent.Algorithm, req.Start, req.End, p, agent.Result.NodesVisited, agent.Result.ElapsedMs())
	}
	return nil
}

// Route runs the request with a single algorithm
func (r *Router) Route(req Request, algorithm Algorithm) (*Agent, error) {
	agent := NewAgent(req, algorithm)
	if err := r.Run(agent); err != nil {
		return nil, err
	}
	return agent, nil
}
