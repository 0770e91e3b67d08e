package routing

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	kml "github.com/twpayne/go-kml"
	polyline "github.com/twpayne/go-polyline"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/graph/path"
)

// Polyline encodes the route of the agent in the encoded polyline format
func (r *Router) Polyline(agent *Agent) string {
	return EncodePolyline(r.Coordinates(agent.Result.Path))
}

func EncodePolyline(points []geo.Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat(), p.Lon()}
	}
	return string(polyline.EncodeCoords(coords))
}

// GeoJSON returns the route as a feature collection.
// It contains one LineString for the route (if a path was found) and a Point for every node on the route.
func (r *Router) GeoJSON(agent *Agent) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	result := agent.Result

	line := make(orb.LineString, 0, len(result.Path))
	for _, p := range r.Coordinates(result.Path) {
		line = append(line, p.Orb())
	}
	if len(line) > 1 {
		route := geojson.NewFeature(line)
		route.Properties["algorithm"] = string(agent.Algorithm)
		route.Properties["start"] = agent.Request.Start
		route.Properties["end"] = agent.Request.End
		route.Properties["cost"] = result.Path.Cost()
		route.Properties["trails"] = result.Trails
		route.Properties["nodesVisited"] = result.NodesVisited
		fc.Append(route)
	}

	for _, step := range result.Path {
		p, ok := r.coords[step.Node]
		if !ok {
			continue
		}
		node := geojson.NewFeature(p.Orb())
		node.Properties["node"] = step.Node
		node.Properties["cost"] = step.Cost
		fc.Append(node)
	}
	return fc
}

// WriteKML writes the route as a KML document
func (r *Router) WriteKML(w io.Writer, agent *Agent) error {
	result := agent.Result
	name := fmt.Sprintf("%v -> %v", agent.Request.Start, agent.Request.End)

	elements := []kml.Element{
		kml.Name(name),
		kml.Description(describe(agent)),
	}

	points := r.Coordinates(result.Path)
	if len(points) > 1 {
		coords := make([]kml.Coordinate, len(points))
		for i, p := range points {
			coords[i] = kml.Coordinate{Lon: p.Lon(), Lat: p.Lat()}
		}
		elements = append(elements, kml.Placemark(
			kml.Name(path.FormatTrails(result.Trails)),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(coords...),
			),
		))
	}

	for _, step := range result.Path {
		p, ok := r.coords[step.Node]
		if !ok {
			continue
		}
		elements = append(elements, kml.Placemark(
			kml.Name(step.Node),
			kml.Description(fmt.Sprintf("%.1f m", step.Cost)),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: p.Lon(), Lat: p.Lat()})),
		))
	}

	return kml.KML(kml.Document(elements...)).WriteIndent(w, "", "  ")
}

func describe(agent *Agent) string {
	result := agent.Result
	if !result.Path.Found() {
		return path.FormatTrails(result.Trails)
	}
	return fmt.Sprintf("%v: %v, %.1f m, %v nodes visited", agent.Algorithm, path.FormatTrails(result.Trails), result.Path.Cost(), result.NodesVisited)
}
