package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/natevvv/ski-routing/pkg/graph/path"
	"github.com/natevvv/ski-routing/pkg/repository"
	"github.com/natevvv/ski-routing/pkg/routing"
	"github.com/natevvv/ski-routing/pkg/trail"
)

func main() {
	dataDirectory := flag.String("data", ".", "Directory of the trail data")
	from := flag.String("from", "", "Starting point")
	to := flag.String("to", "", "Ending point")
	maxRating := flag.String("max-rating", trail.Easy.String(), "Most difficult trail rating to use")
	excludeClosed := flag.Bool("exclude-closed", false, "Ignore closed trails")
	algorithm := flag.String("search", "", "Use only this algorithm (a-star, dijkstra) instead of verifying a-star with dijkstra")
	format := flag.String("format", "text", "Output format: text, geojson or kml")
	debugLevel := flag.Int("debug", 0, "Debug level of the search")
	flag.Parse()

	if *from == "" || *to == "" {
		flag.Usage()
		os.Exit(2)
	}

	rating, err := trail.ParseRating(*maxRating)
	if err != nil {
		log.Fatal(err)
	}
	data, err := repository.Load(*dataDirectory, repository.DefaultFiles())
	if err != nil {
		log.Fatal(err)
	}

	router := routing.NewRouterFromData(data)
	router.SetDebugLevel(*debugLevel)
	req := routing.Request{Start: *from, End: *to, MaxRating: rating, ExcludeClosed: *excludeClosed}

	if *algorithm != "" || *format != "text" {
		alg := routing.AStar
		if *algorithm != "" {
			if alg, err = routing.ParseAlgorithm(*algorithm); err != nil {
				log.Fatal(err)
			}
		}
		agent, err := router.Route(req, alg)
		if err != nil {
			log.Fatal(err)
		}
		if err := output(router, agent, *format); err != nil {
			log.Fatal(err)
		}
		return
	}

	comparison, err := router.Compare(req)
	if err != nil {
		log.Fatal(err)
	}
	printAgent(comparison.AStar)
	fmt.Println(comparison.Verification())
}

func printAgent(agent *routing.Agent) {
	result := agent.Result
	fmt.Printf("Route: %s\n", path.FormatTrails(result.Trails))
	fmt.Printf("[TIME-%s] = %.3fms, nodes visited: %d\n", agent.Algorithm, result.ElapsedMs(), result.NodesVisited)
	if result.Path.Found() {
		fmt.Printf("Path: %v\n", result.Path)
		fmt.Printf("Length: %.1f m\n", result.Path.Cost())
	}
}

func output(router *routing.Router, agent *routing.Agent, format string) error {
	switch format {
	case "text":
		printAgent(agent)
		return nil
	case "geojson":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(router.GeoJSON(agent))
	case "kml":
		return router.WriteKML(os.Stdout, agent)
	}
	return fmt.Errorf("unknown format %q", format)
}
