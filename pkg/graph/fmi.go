package graph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
)

// fmi parse states
const (
	PARSE_NODE_COUNT = iota
	PARSE_EDGE_COUNT = iota
	PARSE_NODES      = iota
	PARSE_EDGES      = iota
)

func WriteFmi(g Graph, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

// NewAdjacencyListFromFmiString parses the text produced by AsString.
// Node ids, target ids and trail names are quoted strings.
func NewAdjacencyListFromFmiString(fmi string) (*AdjacencyListGraph, error) {
	scanner := bufio.NewScanner(strings.NewReader(fmi))

	numNodes := 0
	numParsedNodes := 0

	alg := NewAdjacencyListGraph()

	parseState := PARSE_NODE_COUNT
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		switch parseState {
		case PARSE_NODE_COUNT:
			val, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("invalid node count %q: %w", line, err)
			}
			numNodes = val
			parseState = PARSE_EDGE_COUNT
		case PARSE_EDGE_COUNT:
			if numNodes == 0 {
				parseState = PARSE_EDGES
			} else {
				parseState = PARSE_NODES
			}
		case PARSE_NODES:
			var id string
			var lat, lon float64
			n, _ := fmt.Sscanf(line, "%q %f %f", &id, &lat, &lon)
			switch n {
			case 3:
				alg.AddNode(id, geo.MakePoint(lat, lon))
			case 1:
				alg.nodes[id] = struct{}{}
			default:
				return nil, fmt.Errorf("invalid node line %q", line)
			}
			numParsedNodes++
			if numParsedNodes == numNodes {
				parseState = PARSE_EDGES
			}
		case PARSE_EDGES:
			var from, to, name string
			var length float64
			if n, err := fmt.Sscanf(line, "%q %q %f %q", &from, &to, &length, &name); n != 4 {
				return nil, fmt.Errorf("invalid edge line %q: %v", line, err)
			}
			alg.AddArc(from, to, length, name)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if alg.NodeCount() != numNodes {
		return nil, fmt.Errorf("invalid parsing result: %v nodes announced, %v parsed", numNodes, alg.NodeCount())
	}

	return alg, nil
}

func NewAdjacencyListFromFmiFile(filename string) (*AdjacencyListGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyListFromFmiString(string(fmi))
}
