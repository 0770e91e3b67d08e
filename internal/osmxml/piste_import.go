package osmxml

import (
	"context"
	"io"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/piste"
)

// PisteImporter reads the pistes and lifts of an OSM XML document
type PisteImporter struct {
	ways  []*piste.Way
	nodes map[int64]geo.Point
}

func NewPisteImporter() *PisteImporter {
	return &PisteImporter{
		ways:  make([]*piste.Way, 0),
		nodes: make(map[int64]geo.Point),
	}
}

// ImportFile reads the given .osm file
func (pi *PisteImporter) ImportFile(ctx context.Context, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return pi.Import(ctx, file)
}

// Import scans the document. All node coordinates are kept, since ways may precede their nodes
func (pi *PisteImporter) Import(ctx context.Context, r io.Reader) error {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			pi.nodes[int64(o.ID)] = geo.MakePoint(o.Lat, o.Lon)
		case *osm.Way:
			nodeIDs := make([]int64, len(o.Nodes))
			for i, wn := range o.Nodes {
				nodeIDs[i] = int64(wn.ID)
			}
			if way, ok := piste.NewWay(int64(o.ID), tagMap(o.Tags), nodeIDs); ok {
				pi.ways = append(pi.ways, way)
			}
		}
	}
	return scanner.Err()
}

func tagMap(tags osm.Tags) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[t.Key] = t.Value
	}
	return m
}

func (pi *PisteImporter) Ways() []*piste.Way {
	return pi.ways
}

// Nodes returns the coordinates of all nodes of the document
func (pi *PisteImporter) Nodes() map[int64]geo.Point {
	return pi.nodes
}
