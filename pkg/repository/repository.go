package repository

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/trail"
)

const (
	DefaultNodesFile  = "nodes.json"
	DefaultTrailsFile = "trails.json"
	DefaultClosedFile = "closed_trails.txt"
)

var ErrInvalidData = errors.New("invalid trail data")

// Data holds the node coordinates, the trail records and the names of closed trails.
// It is loaded once and never modified by the routing code.
type Data struct {
	Coordinates map[string]geo.Point
	Records     []trail.Record
	Closed      []string
}

// Files names the data files inside a directory
type Files struct {
	Nodes  string
	Trails string
	Closed string
}

func DefaultFiles() Files {
	return Files{Nodes: DefaultNodesFile, Trails: DefaultTrailsFile, Closed: DefaultClosedFile}
}

// NodeIds returns all node ids in ascending order
func (d *Data) NodeIds() []string {
	ids := make([]string, 0, len(d.Coordinates))
	for id := range d.Coordinates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Load reads all data files from dir.
// A missing closed trails file is not an error, it results in no closed trails.
func Load(dir string, files Files) (*Data, error) {
	coords, err := loadFile(filepath.Join(dir, files.Nodes), ReadNodes)
	if err != nil {
		return nil, err
	}
	records, err := loadFile(filepath.Join(dir, files.Trails), ReadTrails)
	if err != nil {
		return nil, err
	}

	closed := make([]string, 0)
	if files.Closed != "" {
		closedFile := filepath.Join(dir, files.Closed)
		closed, err = loadFile(closedFile, ReadClosedTrails)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("The %q file was not found, no trails are closed\n", closedFile)
			closed = make([]string, 0)
		} else if err != nil {
			return nil, err
		}
	}

	return &Data{Coordinates: coords, Records: records, Closed: closed}, nil
}

func loadFile[T any](filename string, read func(io.Reader) (T, error)) (T, error) {
	var empty T
	file, err := os.Open(filename)
	if err != nil {
		return empty, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer file.Close()

	result, err := read(file)
	if err != nil {
		return empty, fmt.Errorf("could not read %s: %w", filename, err)
	}
	return result, nil
}

// ReadNodes parses the node file, a JSON object of node name to [lat, lon]
func ReadNodes(r io.Reader) (map[string]geo.Point, error) {
	var raw map[string][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	coords := make(map[string]geo.Point, len(raw))
	for name, latLon := range raw {
		if name == "" {
			return nil, fmt.Errorf("%w: empty node name", ErrInvalidData)
		}
		if len(latLon) != 2 {
			return nil, fmt.Errorf("%w: node %q needs [lat, lon], got %v", ErrInvalidData, name, latLon)
		}
		p := geo.MakePoint(latLon[0], latLon[1])
		if !p.Valid() {
			return nil, fmt.Errorf("%w: node %q has invalid coordinate %v", ErrInvalidData, name, p)
		}
		coords[name] = p
	}
	return coords, nil
}

// ReadTrails parses the trail file, a JSON object of trail id to [start, end, length, rating, name].
// The records are returned in file order.
func ReadTrails(r io.Reader) ([]trail.Record, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	records := make([]trail.Record, 0)
	for dec.More() {
		token, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, _ := token.(string)

		var fields []json.RawMessage
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("trail %q: %w", id, err)
		}
		record, err := parseTrail(fields)
		if err != nil {
			return nil, fmt.Errorf("trail %q: %w", id, err)
		}
		records = append(records, record)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return records, nil
}

func parseTrail(fields []json.RawMessage) (trail.Record, error) {
	var record trail.Record
	if len(fields) != 5 {
		return record, fmt.Errorf("%w: expected 5 fields, got %v", ErrInvalidData, len(fields))
	}
	targets := []any{&record.Start, &record.End, &record.Length, &record.Rating, &record.Name}
	for i, target := range targets {
		if err := json.Unmarshal(fields[i], target); err != nil {
			return record, fmt.Errorf("%w: field %v: %w", ErrInvalidData, i, err)
		}
	}
	if record.Start == "" || record.End == "" {
		return record, fmt.Errorf("%w: empty node name", ErrInvalidData)
	}
	return record, nil
}

func expectDelim(dec *json.Decoder, delim json.Delim) error {
	token, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := token.(json.Delim); !ok || d != delim {
		return fmt.Errorf("%w: expected %v, got %v", ErrInvalidData, delim, token)
	}
	return nil
}

// ReadClosedTrails reads one trail name per line. Blank lines are ignored
func ReadClosedTrails(r io.Reader) ([]string, error) {
	closed := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimRight(scanner.Text(), " \t\r")
		if name == "" {
			continue
		}
		closed = append(closed, name)
	}
	return closed, scanner.Err()
}
