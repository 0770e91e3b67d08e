package pbf

import (
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/qedus/osmpbf"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/piste"
)

// PisteImporter reads the pistes and lifts of a pbf file.
// The file is read twice: the first pass collects the ways, the second the coordinates of their nodes.
type PisteImporter struct {
	filename string
	ways     []*piste.Way
	nodes    map[int64]geo.Point
	needed   map[int64]struct{}
}

func NewPisteImporter(filename string) *PisteImporter {
	return &PisteImporter{
		filename: filename,
		ways:     make([]*piste.Way, 0),
		nodes:    make(map[int64]geo.Point),
		needed:   make(map[int64]struct{}),
	}
}

func (pi *PisteImporter) Import() error {
	if err := pi.decode(pi.collectWay); err != nil {
		return err
	}
	return pi.decode(pi.collectNode)
}

func (pi *PisteImporter) decode(handle func(v interface{})) error {
	file, err := os.Open(pi.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	err = decoder.Start(runtime.GOMAXPROCS(-1))
	if err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		handle(v)
	}
}

func (pi *PisteImporter) collectWay(v interface{}) {
	way, ok := v.(*osmpbf.Way)
	if !ok {
		return
	}
	pisteWay, ok := piste.NewWay(way.ID, way.Tags, way.NodeIDs)
	if !ok {
		return
	}
	pi.ways = append(pi.ways, pisteWay)
	for _, id := range way.NodeIDs {
		pi.needed[id] = struct{}{}
	}
}

func (pi *PisteImporter) collectNode(v interface{}) {
	node, ok := v.(*osmpbf.Node)
	if !ok {
		return
	}
	if _, ok := pi.needed[node.ID]; ok {
		pi.nodes[node.ID] = geo.MakePoint(node.Lat, node.Lon)
	}
}

func (pi *PisteImporter) Ways() []*piste.Way {
	return pi.ways
}

// Nodes returns the coordinates of all nodes referenced by the ways
func (pi *PisteImporter) Nodes() map[int64]geo.Point {
	return pi.nodes
}
