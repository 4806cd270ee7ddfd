package spatial

import (
	"github.com/golang/geo/s2"
)

// Earth radius constants
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Centroid calculates the geographic centroid of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// BoundingBox calculates the bounding box of a set of points
// Returns (minLat, minLon, maxLat, maxLon)
func BoundingBox(points []Point) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon

	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}

	return minLat, minLon, maxLat, maxLon
}

// PointInPolygon checks if a point is inside a polygon using the
// even-odd ray casting rule. A horizontal ray is cast from the point;
// an edge crosses it when the point's latitude is strictly between the
// edge's vertex latitudes and the point's longitude lies left of the
// edge's intersection longitude. The denominator carries a small
// epsilon so near-horizontal edges cannot divide by zero. Points
// exactly on an edge or vertex are implementation-defined.
func PointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		p1 := polygon[i]
		p2 := polygon[(i+1)%n]

		if (p1.Lat > point.Lat) != (p2.Lat > point.Lat) {
			crossLon := (p2.Lon-p1.Lon)*(point.Lat-p1.Lat)/(p2.Lat-p1.Lat+1e-12) + p1.Lon
			if point.Lon < crossLon {
				inside = !inside
			}
		}
	}

	return inside
}

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// PolygonAreaKm2 calculates the spherical area of a polygon in square
// kilometers. Vertex order does not matter; the loop is normalized to
// the smaller of the two spherical regions it bounds.
func PolygonAreaKm2(polygon []Point) float64 {
	if len(polygon) < 3 {
		return 0
	}

	pts := make([]s2.Point, len(polygon))
	for i, p := range polygon {
		pts[i] = s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	}

	loop := s2.LoopFromPoints(pts)
	loop.Normalize()
	return loop.Area() * EarthRadiusKm * EarthRadiusKm
}
