package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/natevvv/ski-routing/pkg/graph"
	p "github.com/natevvv/ski-routing/pkg/graph/path"
	"github.com/natevvv/ski-routing/pkg/repository"
	"github.com/natevvv/ski-routing/pkg/slice"
	"github.com/natevvv/ski-routing/pkg/trail"
)

// target is a benchmark query with the reference result
type target struct {
	origin      graph.NodeId
	destination graph.NodeId
	length      float64
	hops        int
}

const lengthTolerance = 1e-6

func main() {
	dataDirectory := flag.String("data", ".", "Directory of the trail data")
	useRandomTargets := flag.Bool("random", false, "Create (new) random targets")
	amountTargets := flag.Int("n", 100, "How many new targets should get created")
	storeTargets := flag.Bool("store", false, "Store targets (when newly generated)")
	algorithm := flag.String("search", "a-star", "Select the search algorithm (a-star, dijkstra, reference)")
	maxRating := flag.String("max-rating", trail.Expert.String(), "Most difficult trail rating to use")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	flag.Parse()

	if !slice.Contains([]string{"a-star", "dijkstra", "reference"}, *algorithm) {
		log.Fatal("Navigator not supported")
	}
	rating, err := trail.ParseRating(*maxRating)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()

	data, err := repository.Load(*dataDirectory, repository.DefaultFiles())
	if err != nil {
		log.Fatal(err)
	}
	g, err := graph.BuildWithNodes(data.Coordinates, data.Records, rating, nil)
	if err != nil {
		log.Fatal(err)
	}
	referenceDijkstra := p.NewDijkstra(g)

	elapsed := time.Since(start)
	fmt.Printf("[TIME-Import] = %s\n", elapsed)

	targetFile := filepath.Join(*dataDirectory, "targets.txt")
	var targets []target
	if *useRandomTargets {
		targets, err = createTargets(*amountTargets, referenceDijkstra)
		if err != nil {
			log.Fatal(err)
		}
		if *storeTargets {
			writeTargets(targets, targetFile)
		}
	} else {
		targets = readTargets(targetFile)
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	newNavigator := func(destination graph.NodeId) p.Navigator {
		switch *algorithm {
		case "reference":
			return p.NewDijkstra(g)
		case "dijkstra":
			h, _ := p.BuildHeuristic(g.GetNodes(), data.Coordinates, destination, p.Uninformed, nil)
			return p.NewBestFirstSearch(g, h)
		default:
			h, err := p.BuildHeuristic(g.GetNodes(), data.Coordinates, destination, p.Informed, nil)
			if err != nil {
				log.Fatal(err)
			}
			return p.NewBestFirstSearch(g, h)
		}
	}
	benchmark(newNavigator, targets)
}

func readTargets(filename string) []target {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	targets := make([]target, 0)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%q %q %g %d", &t.origin, &t.destination, &t.length, &t.hops); err != nil {
			log.Fatalf("Invalid target %q: %v", line, err)
		}
		targets = append(targets, t)
	}
	return targets
}

var errNoNodes = errors.New("no nodes in the trail data, cannot create targets")

func createTargets(n int, referenceNavigator *p.Dijkstra) ([]target, error) {
	nodes := referenceNavigator.GetGraph().GetNodes()
	if len(nodes) == 0 {
		return nil, errNoNodes
	}
	targets := make([]target, n)
	seed := rand.NewSource(time.Now().UnixNano())
	rng := rand.New(seed)
	// reference algorithm to compute path
	for i := 0; i < n; i++ {
		origin := nodes[rng.Intn(len(nodes))]
		destination := nodes[rng.Intn(len(nodes))]
		length := referenceNavigator.ComputeShortestPath(origin, destination)
		hops := len(referenceNavigator.GetPath(origin, destination))
		targets[i] = target{origin, destination, length, hops}
	}
	return targets, nil
}

func writeTargets(targets []target, targetFile string) {
	var sb strings.Builder
	for _, t := range targets {
		sb.WriteString(fmt.Sprintf("%q %q %v %v\n", t.origin, t.destination, t.length, t.hops))
	}

	file, cErr := os.Create(targetFile)
	if cErr != nil {
		log.Fatal(cErr)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	writer.WriteString(sb.String())
	writer.Flush()
}

// Run benchmarks on the graph and targets
func benchmark(newNavigator func(destination graph.NodeId) p.Navigator, targets []target) {
	var runtime time.Duration = 0
	var runtimeWithPathExtraction time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	nodesExpanded := 0

	invalidLengths := make([]int, 0)
	invalidResults := make([]int, 0)
	invalidHops := make([]int, 0)
	lengths := make([]float64, len(targets))
	hops := make([]int, len(targets))

	showResults := func() {
		if completed == 0 {
			fmt.Printf("No target completed\n")
			return
		}
		fmt.Printf("Average runtime: %.3fms, %.3fms\n", float64(runtime.Nanoseconds()/int64(completed))/1000000, float64(runtimeWithPathExtraction.Nanoseconds()/int64(completed))/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average expanded nodes: %d\n", nodesExpanded/completed)

		fmt.Printf("%v/%v invalid Result (source/target).\n", len(invalidResults), completed)
		for i, testcase := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, testcase, targets[testcase].origin, targets[testcase].destination)
		}

		fmt.Printf("%v/%v invalid path lengths.\n", len(invalidLengths), completed)
		for i, testcase := range invalidLengths {
			t := targets[testcase]
			fmt.Printf("%v: Case %v (%v -> %v) has invalid length. Has: %v, Reference: %v, Difference: %v\n", i, testcase, t.origin, t.destination, lengths[testcase], t.length, lengths[testcase]-t.length)
		}

		fmt.Printf("%v/%v invalid hops number.\n", len(invalidHops), completed)
		for i, testcase := range invalidHops {
			t := targets[testcase]
			fmt.Printf("%v: Case %v (%v -> %v) has invalid #hops. Has: %v, reference: %v, difference: %v\n", i, testcase, t.origin, t.destination, hops[testcase], t.hops, hops[testcase]-t.hops)
		}
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, t := range targets {
		navigator := newNavigator(t.destination)

		start := time.Now()
		length := navigator.ComputeShortestPath(t.origin, t.destination)
		elapsed := time.Since(start)

		pqPops += navigator.GetPqPops()
		pqUpdates += navigator.GetPqUpdates()
		nodesExpanded += navigator.GetNodesExpanded()

		path := navigator.GetPath(t.origin, t.destination)
		elapsedPath := time.Since(start)

		fmt.Printf("[%3v TIME-Navigate, TIME-Path, PQ Pops, PQ Updates, expanded Nodes] = %12s, %12s, %7d, %7d, %7d\n", i, elapsed, elapsedPath, navigator.GetPqPops(), navigator.GetPqUpdates(), navigator.GetNodesExpanded())

		lengths[i] = length
		hops[i] = len(path)
		if math.Abs(length-t.length) > lengthTolerance {
			invalidLengths = append(invalidLengths, i)
		}
		if length > -1 && (path[0].Node != t.origin || path[len(path)-1].Node != t.destination) {
			invalidResults = append(invalidResults, i)
		}
		if t.hops != len(path) {
			// equal cost paths may differ in hops
			invalidHops = append(invalidHops, i)
		}

		runtime += elapsed
		runtimeWithPathExtraction += elapsedPath
		completed++
	}
	// normal termination, show results
	showResults()
}
