// Package geom holds the float geometry used to validate strokes: segment
// intersection by orientation and arc-length sampling of polylines.
package geom

import "math"

// Point is a location in viewport space.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Len returns the segment length.
func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// Orientation of an ordered point triple.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// collinearEps absorbs rounding in interpolated coordinates.
const collinearEps = 1e-9

// orient classifies the turn p -> q -> r by the sign of the cross product.
func orient(p, q, r Point) Orientation {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case math.Abs(v) < collinearEps:
		return Collinear
	case v > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// onSegment reports whether q lies inside the bounding box of p and r.
// Only meaningful when p, q, r are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentsIntersect reports whether a and b share at least one point.
// Touching endpoints and collinear overlaps count as intersections.
func SegmentsIntersect(a, b Segment) bool {
	o1 := orient(a.A, a.B, b.A)
	o2 := orient(a.A, a.B, b.B)
	o3 := orient(b.A, b.B, a.A)
	o4 := orient(b.A, b.B, a.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Degenerate cases: a point of one segment lies on the other.
	if o1 == Collinear && onSegment(a.A, b.A, a.B) {
		return true
	}
	if o2 == Collinear && onSegment(a.A, b.B, a.B) {
		return true
	}
	if o3 == Collinear && onSegment(b.A, a.A, b.B) {
		return true
	}
	if o4 == Collinear && onSegment(b.A, a.B, b.B) {
		return true
	}
	return false
}

// Segments splits a polyline into its consecutive segments.
// Fewer than two points yields nil.
func Segments(points []Point) []Segment {
	if len(points) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		out = append(out, Segment{A: points[i], B: points[i+1]})
	}
	return out
}

// Length returns the total arc length of a polyline.
func Length(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Dist(points[i])
	}
	return total
}

// PointAt returns the point at arc distance d along the polyline, clamped to
// its ends.
func PointAt(points []Point, d float64) Point {
	if len(points) == 0 {
		return Point{}
	}
	if d <= 0 {
		return points[0]
	}
	for i := 1; i < len(points); i++ {
		seg := points[i-1].Dist(points[i])
		if d <= seg {
			if seg == 0 {
				return points[i]
			}
			t := d / seg
			return Point{
				X: points[i-1].X + (points[i].X-points[i-1].X)*t,
				Y: points[i-1].Y + (points[i].Y-points[i-1].Y)*t,
			}
		}
		d -= seg
	}
	return points[len(points)-1]
}

// Sample approximates a polyline with n segments of equal arc length.
// A zero-length polyline collapses to a single degenerate segment.
func Sample(points []Point, n int) []Segment {
	if len(points) == 0 || n <= 0 {
		return nil
	}
	total := Length(points)
	if total == 0 {
		return []Segment{{A: points[0], B: points[0]}}
	}
	out := make([]Segment, 0, n)
	prev := points[0]
	for i := 1; i <= n; i++ {
		next := PointAt(points, float64(i)*total/float64(n))
		out = append(out, Segment{A: prev, B: next})
		prev = next
	}
	return out
}

// SelfIntersects reports whether any two non-adjacent segments of the
// polyline touch. Points within tolerance of the previously kept point are
// dropped first, so a resting or trembling pointer does not read as a loop.
func SelfIntersects(points []Point, tolerance float64) bool {
	segs := Segments(Thin(points, tolerance))
	for i := 0; i < len(segs); i++ {
		for j := i + 2; j < len(segs); j++ {
			if SegmentsIntersect(segs[i], segs[j]) {
				return true
			}
		}
	}
	return false
}

// Thin drops every point that lies within tolerance of the last point kept.
// A zero tolerance only collapses exact repeats.
func Thin(points []Point, tolerance float64) []Point {
	if len(points) < 2 {
		return points
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if p.Dist(out[len(out)-1]) > tolerance {
			out = append(out, p)
		}
	}
	return out
}
