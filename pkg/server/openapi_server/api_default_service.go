package openapi_server

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/natevvv/ski-routing/pkg/graph/path"
	"github.com/natevvv/ski-routing/pkg/repository"
	"github.com/natevvv/ski-routing/pkg/routing"
	"github.com/natevvv/ski-routing/pkg/trail"
)

var ErrReloadNotConfigured = errors.New("data reload is not configured")

// RouteDefaults are used for request fields which are not set
type RouteDefaults struct {
	MaxRating     trail.Rating
	ExcludeClosed bool
	// Verify compares every a-star route with Dijkstra's algorithm
	Verify bool
}

// Loader provides fresh trail data for a reload
type Loader func(ctx context.Context) (*repository.Data, error)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	mu         sync.RWMutex
	router     *routing.Router
	data       *repository.Data
	summary    DataSummary
	defaults   RouteDefaults
	loader     Loader
	debugLevel int
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(data *repository.Data, defaults RouteDefaults, loader Loader) *DefaultApiService {
	s := &DefaultApiService{defaults: defaults, loader: loader}
	s.setData(data)
	return s
}

// Set the debug level of the search. A new router replaces the current one,
// requests which are already running keep the router (and level) they started with.
func (s *DefaultApiService) SetDebugLevel(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugLevel = level
	s.router = newRouter(s.data, level)
}

func newRouter(data *repository.Data, debugLevel int) *routing.Router {
	router := routing.NewRouterFromData(data)
	router.SetDebugLevel(debugLevel)
	return router
}

func (s *DefaultApiService) setData(data *repository.Data) {
	summary := DataSummary{Nodes: len(data.Coordinates), Trails: len(data.Records), Closed: len(data.Closed)}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.router = newRouter(data, s.debugLevel)
	s.data = data
	s.summary = summary
}

func (s *DefaultApiService) currentRouter() *routing.Router {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.router
}

func (s *DefaultApiService) parseRequest(routeRequest RouteRequest) (routing.Request, error) {
	req := routing.Request{
		Start:         routeRequest.Start,
		End:           routeRequest.End,
		MaxRating:     s.defaults.MaxRating,
		ExcludeClosed: s.defaults.ExcludeClosed,
	}
	if routeRequest.MaxRating != "" {
		rating, err := trail.ParseRating(routeRequest.MaxRating)
		if err != nil {
			return req, err
		}
		req.MaxRating = rating
	}
	if routeRequest.ExcludeClosed != nil {
		req.ExcludeClosed = *routeRequest.ExcludeClosed
	}
	return req, nil
}

// route runs a single algorithm for the exports
func (s *DefaultApiService) route(routeRequest RouteRequest) (*routing.Router, *routing.Agent, error) {
	req, err := s.parseRequest(routeRequest)
	if err != nil {
		return nil, nil, err
	}
	algorithm := routing.AStar
	if routeRequest.Algorithm != "" {
		if algorithm, err = routing.ParseAlgorithm(routeRequest.Algorithm); err != nil {
			return nil, nil, err
		}
	}
	router := s.currentRouter()
	agent, err := router.Route(req, algorithm)
	return router, agent, err
}

// ComputeRoute - Compute a route with A* and, if enabled, verify it with Dijkstra
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	req, err := s.parseRequest(routeRequest)
	if err != nil {
		return Response(http.StatusBadRequest, nil), err
	}

	router := s.currentRouter()
	result := RouteResult{
		Start:         req.Start,
		End:           req.End,
		MaxRating:     req.MaxRating.String(),
		ExcludeClosed: req.ExcludeClosed,
	}

	if !s.defaults.Verify {
		agent, err := router.Route(req, routing.AStar)
		if err != nil {
			return Response(http.StatusInternalServerError, nil), err
		}
		result.AStar = agentResult(router, agent)
		result.Polyline = router.Polyline(agent)
		return Response(http.StatusOK, result), nil
	}

	comparison, err := router.Compare(req)
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	dijkstra := agentResult(router, comparison.Dijkstra)
	result.AStar = agentResult(router, comparison.AStar)
	result.Dijkstra = &dijkstra
	result.Match = &comparison.Match
	result.CostMatch = &comparison.CostMatch
	result.Verification = comparison.Verification()
	result.Polyline = router.Polyline(comparison.AStar)
	return Response(http.StatusOK, result), nil
}

func agentResult(router *routing.Router, agent *routing.Agent) AgentResult {
	result := agent.Result
	steps := make([]PathStep, 0, len(result.Path))
	for _, step := range result.Path {
		p, _ := router.Coordinate(step.Node)
		steps = append(steps, PathStep{Node: step.Node, Cost: step.Cost, Lat: p.Lat(), Lon: p.Lon()})
	}
	return AgentResult{
		Algorithm:    string(agent.Algorithm),
		Found:        result.Path.Found(),
		Cost:         result.Path.Cost(),
		Path:         steps,
		Trails:       result.Trails,
		Route:        path.FormatTrails(result.Trails),
		NodesVisited: result.NodesVisited,
		ElapsedMs:    result.ElapsedMs(),
	}
}

// ComputeRouteGeoJson - Compute a route and return it as GeoJSON feature collection
func (s *DefaultApiService) ComputeRouteGeoJson(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	router, agent, err := s.route(routeRequest)
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	return Response(http.StatusOK, router.GeoJSON(agent)), nil
}

// ComputeRouteKml - Compute a route and return it as KML document
func (s *DefaultApiService) ComputeRouteKml(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	router, agent, err := s.route(routeRequest)
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	var buf bytes.Buffer
	if err := router.WriteKML(&buf, agent); err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	return Response(http.StatusOK, buf.Bytes()), nil
}

func (s *DefaultApiService) GetNodes(ctx context.Context) (ImplResponse, error) {
	router := s.currentRouter()

	nodes := make([]Node, 0)
	for _, name := range router.Nodes() {
		p, _ := router.Coordinate(name)
		nodes = append(nodes, Node{Name: name, Position: Point{Lat: p.Lat(), Lon: p.Lon()}})
	}
	return Response(http.StatusOK, Nodes{Nodes: nodes}), nil
}

func (s *DefaultApiService) GetRatings(ctx context.Context) (ImplResponse, error) {
	ratings := make([]string, 0)
	for _, r := range trail.Ratings() {
		ratings = append(ratings, r.String())
	}
	return Response(http.StatusOK, Ratings{Ratings: ratings, Default: s.defaults.MaxRating.String()}), nil
}

// ReloadData - Load the trail data again and use it for all following requests
func (s *DefaultApiService) ReloadData(ctx context.Context) (ImplResponse, error) {
	if s.loader == nil {
		return Response(http.StatusNotImplemented, nil), ErrReloadNotConfigured
	}
	data, err := s.loader(ctx)
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	s.setData(data)

	s.mu.RLock()
	summary := s.summary
	s.mu.RUnlock()
	log.Printf("Reloaded trail data: %v nodes, %v trails, %v closed\n", summary.Nodes, summary.Trails, summary.Closed)
	return Response(http.StatusOK, summary), nil
}
