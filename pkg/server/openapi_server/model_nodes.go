// SPDX-License-Identifier: MIT

package openapi_server

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Node struct {
	Name     string `json:"name"`
	Position Point  `json:"position"`
}

type Nodes struct {
	Nodes []Node `json:"nodes"`
}

type Ratings struct {
	Ratings []string `json:"ratings"`
	Default string   `json:"default"`
}

type DataSummary struct {
	Nodes  int `json:"nodes"`
	Trails int `json:"trails"`
	Closed int `json:"closed"`
}

type Error struct {
	Message string `json:"message"`
}
