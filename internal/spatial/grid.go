package spatial

import "math"

// DefaultGridStep matches the native ~0.5° resolution of the NASA
// POWER daily grid.
const DefaultGridStep = 0.5

// gridEpsilon absorbs floating-point noise at the upper bound of the
// bounding box so grid lines landing exactly on it are not lost.
const gridEpsilon = 1e-9

// SampleGrid rasterizes a polygon onto a fixed-resolution grid. The
// polygon's bounding box is covered by candidate coordinates
// origin + i*step, where origin is the box minimum rounded to the
// nearest multiple of step; candidates are computed from the index
// rather than by repeated addition, so long rows do not drift. Points
// passing the even-odd containment test are returned row-major:
// ascending latitude, then ascending longitude. The result may be
// empty when the polygon is smaller than one grid cell; falling back
// to the centroid in that case is the caller's choice.
func SampleGrid(polygon []Point, step float64) []Point {
	if len(polygon) < 3 || step <= 0 {
		return nil
	}

	minLat, minLon, maxLat, maxLon := BoundingBox(polygon)

	latOrigin := math.Round(minLat/step) * step
	lonOrigin := math.Round(minLon/step) * step

	var points []Point
	for i := 0; ; i++ {
		lat := latOrigin + float64(i)*step
		if lat > maxLat+gridEpsilon {
			break
		}
		for j := 0; ; j++ {
			lon := lonOrigin + float64(j)*step
			if lon > maxLon+gridEpsilon {
				break
			}
			if PointInPolygon(Point{Lat: lat, Lon: lon}, polygon) {
				points = append(points, Point{Lat: lat, Lon: lon})
			}
		}
	}

	return points
}
