package board

import (
	"math"

	"github.com/Garsondee/colorlink/internal/geom"
)

// NearestDot returns the index of the first dot, in grid order, whose centre
// lies strictly inside the axis-aligned box of half-width radius around
// (x, y). This is a box test, not a Euclidean one.
func (s *State) NearestDot(x, y, radius float64) (int, bool) {
	for i, d := range s.Dots {
		if math.Abs(d.X-x) < radius && math.Abs(d.Y-y) < radius {
			return i, true
		}
	}
	return -1, false
}

// PathsIntersect reports whether the polyline crosses or touches any committed
// path. Committed paths are approximated by PathSamples equal-length segments.
func (s *State) PathsIntersect(points []geom.Point) bool {
	stroke := geom.Segments(points)
	if len(stroke) == 0 {
		return false
	}
	for _, path := range s.Paths {
		for _, existing := range geom.Sample(path, PathSamples) {
			for _, seg := range stroke {
				if geom.SegmentsIntersect(seg, existing) {
					return true
				}
			}
		}
	}
	return false
}

// PassesThroughForeignDot reports whether an interior point of the polyline
// (the first and last are skipped) comes within radius of an unconnected dot
// other than start and end.
func (s *State) PassesThroughForeignDot(points []geom.Point, start, end int, radius float64) bool {
	if len(points) < 3 {
		return false
	}
	for i, d := range s.Dots {
		if i == start || i == end || d.Connected {
			continue
		}
		c := d.Pos()
		for _, p := range points[1 : len(points)-1] {
			if c.Dist(p) < radius {
				return true
			}
		}
	}
	return false
}
