package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchExpansions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ski_routing_search_expansions",
		Help:    "Number of nodes expanded by a route search.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"algorithm"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ski_routing_search_duration_seconds",
		Help:    "Time to build the graph and search a route.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"algorithm"})

	searchResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ski_routing_searches_total",
		Help: "Route searches by algorithm and whether a path was found.",
	}, []string{"algorithm", "found"})

	comparisonMismatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ski_routing_comparison_mismatches_total",
		Help: "Comparisons where A* and Dijkstra returned different paths.",
	}, []string{"cost_match"})
)

func observeSearch(agent *Agent) {
	alg := string(agent.Algorithm)
	searchExpansions.WithLabelValues(alg).Observe(float64(agent.Result.NodesVisited))
	searchDuration.WithLabelValues(alg).Observe(agent.Result.Elapsed.Seconds())
	found := "false"
	if agent.Result.Path.Found() {
		found = "true"
	}
	searchResults.WithLabelValues(alg, found).Inc()
}
