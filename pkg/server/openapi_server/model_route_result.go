// SPDX-License-Identifier: MIT

package openapi_server

type PathStep struct {
	Node string  `json:"node"`
	Cost float64 `json:"cost"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// AgentResult is the outcome of a single algorithm
type AgentResult struct {
	Algorithm    string     `json:"algorithm"`
	Found        bool       `json:"found"`
	Cost         float64    `json:"cost"`
	Path         []PathStep `json:"path"`
	Trails       []string   `json:"trails"`
	Route        string     `json:"route"`
	NodesVisited int        `json:"nodesVisited"`
	ElapsedMs    float64    `json:"elapsedMs"`
}

type RouteResult struct {
	Start         string      `json:"start"`
	End           string      `json:"end"`
	MaxRating     string      `json:"maxRating"`
	ExcludeClosed bool        `json:"excludeClosed"`
	AStar         AgentResult `json:"aStar"`
	// the verification fields are only set when the route was verified with Dijkstra
	Dijkstra     *AgentResult `json:"dijkstra,omitempty"`
	Match        *bool        `json:"match,omitempty"`
	CostMatch    *bool        `json:"costMatch,omitempty"`
	Verification string       `json:"verification,omitempty"`
	// encoded polyline of the a-star route
	Polyline string `json:"polyline"`
}
