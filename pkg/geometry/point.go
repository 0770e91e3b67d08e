package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/tidwall/geodesic"
)

// Point is a WGS84 coordinate. The underlying orb.Point stores longitude first.
type Point orb.Point

// DistanceFunc returns the distance between two points in meters.
type DistanceFunc func(a, b Point) float64

func MakePoint(lat, lon float64) Point {
	return Point{lon, lat}
}

func (p Point) Lat() float64 { return p[1] }
func (p Point) Lon() float64 { return p[0] }

// Orb returns the point as an orb.Point to be used with the orb packages
func (p Point) Orb() orb.Point { return orb.Point(p) }

// Valid reports whether the latitude and longitude lie inside their ranges
func (p Point) Valid() bool {
	lat, lon := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat(), p.Lon())
}

// Distance computes the geodesic distance between a and b in meters on the WGS84 ellipsoid.
// Trail lengths are measured the same way, so the distance never exceeds the length of a trail
// connecting both points. It implements DistanceFunc.
func Distance(a, b Point) float64 {
	if a == b {
		return 0
	}
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat(), a.Lon(), b.Lat(), b.Lon(), &s12, nil, nil)
	return s12
}
