package openapi_server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ski_routing_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ski_routing_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// MetricsController exposes the prometheus metrics of the process
type MetricsController struct {
	handler http.Handler
}

func NewMetricsController() Router {
	return &MetricsController{handler: promhttp.Handler()}
}

// Routes returns the metrics route
func (c *MetricsController) Routes() Routes {
	return Routes{
		{
			"GetMetrics",
			http.MethodGet,
			"/metrics",
			c.handler.ServeHTTP,
		},
	}
}
