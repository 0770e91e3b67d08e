package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/natevvv/ski-routing/pkg/graph"
	"github.com/natevvv/ski-routing/pkg/repository"
	"github.com/natevvv/ski-routing/pkg/slice"
	"github.com/natevvv/ski-routing/pkg/trail"
)

func main() {
	dataDirectory := flag.String("data", ".", "Directory of the trail data")
	maxRating := flag.String("max-rating", trail.Expert.String(), "Most difficult trail rating to include")
	excludeClosed := flag.Bool("exclude-closed", false, "Leave out closed trails")
	outputFile := flag.String("o", "trail_graph.fmi", "Output file of the graph")
	flag.Parse()

	rating, err := trail.ParseRating(*maxRating)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	data, err := repository.Load(*dataDirectory, repository.DefaultFiles())
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)
	fmt.Printf("[TIME] Load trail data: %s\n", elapsed)

	start = time.Now()
	excluded := make(map[string]struct{})
	if *excludeClosed {
		excluded = slice.Set(data.Closed)
	}
	g, err := graph.BuildWithNodes(data.Coordinates, data.Records, rating, excluded)
	if err != nil {
		log.Fatal(err)
	}
	elapsed = time.Since(start)
	fmt.Printf("[TIME] Build graph: %s\n", elapsed)
	fmt.Printf("Nodes: %d\n", g.NodeCount())
	fmt.Printf("Arcs: %d (from %d trail records)\n", g.ArcCount(), len(data.Records))

	start = time.Now()
	if err := graph.WriteFmi(g, *outputFile); err != nil {
		log.Fatal(err)
	}
	elapsed = time.Since(start)
	fmt.Printf("[TIME] Export graph: %s\n", elapsed)
}
