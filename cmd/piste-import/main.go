package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/natevvv/ski-routing/internal/osmxml"
	"github.com/natevvv/ski-routing/internal/pbf"
	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/piste"
)

var flagInputFile = flag.String("f", "resort.osm.pbf", "OSM file (.osm.pbf or .osm)")
var flagOutputDirectory = flag.String("o", ".", "Output directory for nodes.json and trails.json")

type importer interface {
	Ways() []*piste.Way
	Nodes() map[int64]geo.Point
}

func main() {
	flag.Parse()

	start := time.Now()

	var imp importer
	if strings.HasSuffix(*flagInputFile, ".pbf") {
		pbfImporter := pbf.NewPisteImporter(*flagInputFile)
		if err := pbfImporter.Import(); err != nil {
			log.Fatal(err)
		}
		imp = pbfImporter
	} else {
		xmlImporter := osmxml.NewPisteImporter()
		if err := xmlImporter.ImportFile(context.Background(), *flagInputFile); err != nil {
			log.Fatal(err)
		}
		imp = xmlImporter
	}

	elapsed := time.Since(start)
	fmt.Printf("[TIME] Import: %s\n", elapsed)

	start = time.Now()

	converter := piste.NewConverter(imp.Ways(), imp.Nodes())
	converter.Convert()

	elapsed = time.Since(start)
	fmt.Printf("[TIME] Convert: %s\n", elapsed)
	fmt.Printf("Ways: %d\n", len(imp.Ways()))
	fmt.Printf("Trail records: %d\n", len(converter.Records()))
	fmt.Printf("Nodes: %d\n", len(converter.Nodes()))
	fmt.Printf("Skipped ways: %d, skipped node pairs: %d\n", converter.SkippedWays(), converter.SkippedPairs())

	start = time.Now()

	if err := pbf.ExportTrailData(converter, *flagOutputDirectory); err != nil {
		log.Fatal(err)
	}

	elapsed = time.Since(start)
	fmt.Printf("[TIME] Export: %s\n", elapsed)
	fmt.Printf("Exported trail data to %s\n", *flagOutputDirectory)
}
